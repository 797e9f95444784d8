package packrat

import (
	"github.com/alecthomas/packrat/lexer"
)

// A Visitor is notified as a Walker enters and leaves nodes of the types it is interested in.
type Visitor interface {
	// NodeTypes the visitor is interested in.
	NodeTypes() []*NodeType
	VisitNode(node *Node) error
	LeaveNode(node *Node) error
}

// A TokenVisitor is additionally notified of each distinct token in the tree.
type TokenVisitor interface {
	Visitor
	VisitToken(token *lexer.Token) error
}

// A FileVisitor is additionally notified before and after a whole tree is walked.
type FileVisitor interface {
	Visitor
	VisitFile(ast *Node) error
	BeforeLeaveFile(ast *Node) error
	LeaveFile(ast *Node) error
}

// A Walker dispatches Visitor callbacks over a parse tree.
//
// A Walker may be reused, but must not be used for more than one walk at a time.
type Walker struct {
	visitors      []Visitor
	enter         map[*NodeType][]Visitor
	leave         map[*NodeType][]Visitor
	tokenVisitors []TokenVisitor
	lastToken     *lexer.Token
}

// NewWalker creates a Walker dispatching to visitors in order.
func NewWalker(visitors ...Visitor) *Walker {
	w := &Walker{
		enter: map[*NodeType][]Visitor{},
		leave: map[*NodeType][]Visitor{},
	}
	for _, v := range visitors {
		w.AddVisitor(v)
	}
	return w
}

// AddVisitor registers a visitor after all those already registered.
func (w *Walker) AddVisitor(visitor Visitor) {
	w.visitors = append(w.visitors, visitor)
	for _, t := range visitor.NodeTypes() {
		w.enter[t] = append(w.enter[t], visitor)
		w.leave[t] = append([]Visitor{visitor}, w.leave[t]...)
	}
	if tv, ok := visitor.(TokenVisitor); ok {
		w.tokenVisitors = append(w.tokenVisitors, tv)
	}
}

// Walk the tree rooted at ast.
func (w *Walker) Walk(ast *Node) error {
	return w.WalkAndListen(ast, nil)
}

// WalkAndListen walks the tree rooted at ast, passing output to the scope of every node.
//
// The first error returned by a visitor aborts the walk and is returned unchanged.
func (w *Walker) WalkAndListen(ast *Node, output interface{}) error {
	w.lastToken = nil
	for _, v := range w.visitors {
		if fv, ok := v.(FileVisitor); ok {
			if err := fv.VisitFile(ast); err != nil {
				return err
			}
		}
	}
	if err := w.visit(ast, output); err != nil {
		return err
	}
	for i := len(w.visitors) - 1; i >= 0; i-- {
		if fv, ok := w.visitors[i].(FileVisitor); ok {
			if err := fv.BeforeLeaveFile(ast); err != nil {
				return err
			}
		}
	}
	for i := len(w.visitors) - 1; i >= 0; i-- {
		if fv, ok := w.visitors[i].(FileVisitor); ok {
			if err := fv.LeaveFile(ast); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) visit(node *Node, output interface{}) error {
	node.startListening(output)
	defer node.stopListening(output)

	for _, v := range w.enter[node.Type] {
		if err := v.VisitNode(node); err != nil {
			return err
		}
	}
	if err := w.visitToken(node); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := w.visit(child, output); err != nil {
			return err
		}
	}
	for _, v := range w.leave[node.Type] {
		if err := v.LeaveNode(node); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) visitToken(node *Node) error {
	if node.Token == nil || node.Token == w.lastToken {
		return nil
	}
	w.lastToken = node.Token
	for _, v := range w.tokenVisitors {
		if err := v.VisitToken(node.Token); err != nil {
			return err
		}
	}
	return nil
}
