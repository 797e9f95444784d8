package packrat

import (
	"fmt"
	"strings"

	"github.com/alecthomas/packrat/lexer"
)

// TokenNode is the type of every AST node produced by a leaf matcher.
var TokenNode = NewNodeType("<token>")

// A NodeType identifies a kind of AST node.
//
// Node types are compared by identity: two types with the same name are distinct.
type NodeType struct {
	name     string
	listener NodeListener
}

// NewNodeType creates a new, distinct, NodeType.
func NewNodeType(name string) *NodeType {
	return &NodeType{name: name}
}

func (t *NodeType) Name() string   { return t.name }
func (t *NodeType) String() string { return t.name }

// A NodeListener is notified when a Walker opens and closes the scope of a node of the
// type it is plugged into.
type NodeListener interface {
	StartListening(node *Node, output interface{})
	StopListening(node *Node, output interface{})
}

// Node in a parse tree.
type Node struct {
	Type *NodeType
	// First token consumed by this node, if any.
	Token    *lexer.Token
	Children []*Node
	// Start and End (exclusive) token indexes matched by this node.
	Start int
	End   int

	scope *Scope
}

// Scope returns the observation scope of the node, or nil if the node is not currently
// being walked.
func (n *Node) Scope() *Scope { return n.scope }

// Is returns true if the node is of type t.
func (n *Node) Is(t *NodeType) bool { return n.Type == t }

// FirstChild of type t, or nil.
func (n *Node) FirstChild(t *NodeType) *Node {
	for _, c := range n.Children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all direct children of type t.
func (n *Node) ChildrenOf(t *NodeType) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Tokens returns the tokens of all leaf nodes below n, in order.
func (n *Node) Tokens() []*lexer.Token {
	var out []*lexer.Token
	var collect func(n *Node)
	collect = func(n *Node) {
		if n.Type == TokenNode {
			out = append(out, n.Token)
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(n)
	return out
}

// Value concatenates the values of all tokens below n, separated by spaces.
func (n *Node) Value() string {
	tokens := n.Tokens()
	values := make([]string, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, t.Value)
	}
	return strings.Join(values, " ")
}

func (n *Node) String() string {
	if n.Type == TokenNode {
		return fmt.Sprintf("%q", n.Token.Value)
	}
	children := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, c.String())
	}
	return fmt.Sprintf("%s(%s)", n.Type, strings.Join(children, " "))
}

// Deep copy of the node, without its scope.
func (n *Node) clone() *Node {
	out := &Node{Type: n.Type, Token: n.Token, Start: n.Start, End: n.End}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.clone())
	}
	return out
}

func (n *Node) startListening(output interface{}) {
	n.scope = &Scope{Node: n, Output: output}
	if n.Type.listener != nil {
		n.Type.listener.StartListening(n, output)
	}
}

func (n *Node) stopListening(output interface{}) {
	defer func() { n.scope = nil }()
	if n.Type.listener != nil {
		n.Type.listener.StopListening(n, output)
	}
}

// Scope is the auxiliary output slot of a node while it is being walked.
type Scope struct {
	Node   *Node
	Output interface{}
	values map[string]interface{}
}

// Set a value in the scope.
func (s *Scope) Set(key string, value interface{}) {
	if s.values == nil {
		s.values = map[string]interface{}{}
	}
	s.values[key] = value
}

// Get a value from the scope.
func (s *Scope) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}
