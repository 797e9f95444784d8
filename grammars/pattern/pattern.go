package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/lexer"
)

// Pattern is a parsed structural search pattern.
type Pattern struct {
	// Parents of the matched node, outermost first.
	Parents []Relation
	// Before are the names or values of the siblings required before the matched node.
	Before []string
	// This lists the names or values the matched node may have. Empty matches any node.
	This  []string
	After []string
	// Children of the matched node, outermost first.
	Children []Relation
}

// Relation to another node, identified by rule name.
type Relation struct {
	Rule string
	// Indirect relations allow any number of intermediate nodes.
	Indirect bool
}

// String renders the pattern in its source form, with token values unquoted.
func (p *Pattern) String() string {
	this := "*"
	if len(p.This) > 0 {
		this = strings.Join(p.This, ", ")
	}
	out := fmt.Sprintf("this(%s)", this)
	if len(p.Before) > 0 {
		out = strings.Join(p.Before, " ") + " " + out
	}
	if len(p.After) > 0 {
		out += " " + strings.Join(p.After, " ")
	}
	if len(p.Children) > 0 {
		child := ""
		for i := len(p.Children) - 1; i >= 0; i-- {
			rel := p.Children[i]
			c := rel.Rule
			if child != "" {
				c += "(" + child + ")"
			}
			if rel.Indirect {
				c = "(" + c + ")"
			}
			child = c
		}
		out += "(" + child + ")"
	}
	for i := len(p.Parents) - 1; i >= 0; i-- {
		rel := p.Parents[i]
		if rel.Indirect {
			out = rel.Rule + "((" + out + "))"
		} else {
			out = rel.Rule + "(" + out + ")"
		}
	}
	return out
}

// Parser for structural search patterns.
type Parser struct {
	grammar *Grammar
	parser  *packrat.Parser
}

// NewParser creates a Parser over its own Grammar.
func NewParser(options ...packrat.Option) (*Parser, error) {
	g := New()
	parser, err := packrat.New(g.Grammar, options...)
	if err != nil {
		return nil, err
	}
	return &Parser{grammar: g, parser: parser}, nil
}

// Grammar used by the Parser.
func (p *Parser) Grammar() *Grammar { return p.grammar }

// ParseString parses and compiles a pattern.
func (p *Parser) ParseString(s string) (*Pattern, error) {
	ast, err := p.parser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return p.grammar.Compile(ast)
}

// Compile the AST of a pattern into a Pattern.
func (g *Grammar) Compile(ast *packrat.Node) (*Pattern, error) {
	if !ast.Is(g.Pattern.Type()) {
		return nil, fmt.Errorf("expected a %s node but got %s", g.Pattern.Type(), ast.Type)
	}
	out := &Pattern{}
	walker := packrat.NewWalker(&compiler{grammar: g})
	if err := walker.WalkAndListen(ast, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Builds the Pattern passed as the walk's output.
type compiler struct {
	grammar *Grammar
	section *[]string
}

func (c *compiler) NodeTypes() []*packrat.NodeType {
	g := c.grammar
	return []*packrat.NodeType{
		g.DirectParentMatcher.Type(), g.IndirectParentMatcher.Type(),
		g.BeforeMatcher.Type(), g.ThisMatcher.Type(), g.AfterMatcher.Type(),
		g.DirectChildMatcher.Type(), g.IndirectChildMatcher.Type(),
		g.NodeName.Type(), g.TokenValue.Type(),
	}
}

func (c *compiler) VisitNode(node *packrat.Node) error {
	g := c.grammar
	out := node.Scope().Output.(*Pattern)
	switch node.Type {
	case g.DirectParentMatcher.Type(), g.IndirectParentMatcher.Type():
		out.Parents = append(out.Parents, c.relation(node, g.IndirectParentMatcher.Type()))
	case g.DirectChildMatcher.Type(), g.IndirectChildMatcher.Type():
		out.Children = append(out.Children, c.relation(node, g.IndirectChildMatcher.Type()))
	case g.BeforeMatcher.Type():
		c.section = &out.Before
	case g.ThisMatcher.Type():
		c.section = &out.This
	case g.AfterMatcher.Type():
		c.section = &out.After
	case g.NodeName.Type():
		*c.section = append(*c.section, node.Token.Value)
	case g.TokenValue.Type():
		value, err := strconv.Unquote(node.Token.Value)
		if err != nil {
			return lexer.Errorf(node.Token.Pos, "invalid token value %s: %s", node.Token.Value, err)
		}
		*c.section = append(*c.section, value)
	}
	return nil
}

func (c *compiler) LeaveNode(node *packrat.Node) error { return nil }

func (c *compiler) relation(node *packrat.Node, indirect *packrat.NodeType) Relation {
	return Relation{
		Rule:     node.FirstChild(c.grammar.RuleName.Type()).Value(),
		Indirect: node.Is(indirect),
	}
}
