package main

import (
	"strconv"
	"text/scanner"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/lexer"
)

type Group struct {
	Expression *Expression `json:",omitempty"`
}

type Option struct {
	Expression *Expression `json:",omitempty"`
}

type Repetition struct {
	Expression *Expression `json:",omitempty"`
}

type Literal struct {
	Start string  `json:",omitempty"`
	End   *string `json:",omitempty"`
}

type Term struct {
	Name       string      `json:",omitempty"`
	Literal    *Literal    `json:",omitempty"`
	Group      *Group      `json:",omitempty"`
	Option     *Option     `json:",omitempty"`
	Repetition *Repetition `json:",omitempty"`
}

type Sequence struct {
	Terms []*Term `json:",omitempty"`
}

type Expression struct {
	Alternatives []*Sequence `json:",omitempty"`
}

type Production struct {
	Name       string      `json:",omitempty"`
	Expression *Expression `json:",omitempty"`
}

type EBNF struct {
	Productions []*Production `json:",omitempty"`
}

type grammar struct {
	*packrat.Grammar

	production *packrat.Rule
	expression *packrat.Rule
	sequence   *packrat.Rule
	term       *packrat.Rule
	literal    *packrat.Rule
	group      *packrat.Rule
	option     *packrat.Rule
	repetition *packrat.Rule
}

func newGrammar() *grammar {
	g := &grammar{Grammar: packrat.NewGrammar()}
	ebnf := g.Rule("EBNF")
	g.production = g.Rule("Production")
	g.expression = g.Rule("Expression")
	g.sequence = g.Rule("Alternative")
	g.term = g.Rule("Term")
	g.literal = g.Rule("Literal")
	g.group = g.Rule("Group")
	g.option = g.Rule("Option")
	g.repetition = g.Rule("Repetition")

	ebnf.Is(packrat.ZeroOrMore(g.production))
	g.production.Is(scanner.Ident, "=", packrat.Optional(g.expression), ".")
	g.expression.Is(g.sequence, packrat.ZeroOrMore("|", g.sequence))
	g.sequence.Is(packrat.OneOrMore(g.term))
	g.term.IsOr(scanner.Ident, g.literal, g.group, g.option, g.repetition)
	g.literal.Is(scanner.String, packrat.Optional("…", scanner.String))
	g.group.Is("(", g.expression, ")")
	g.option.Is("[", g.expression, "]")
	g.repetition.Is("{", g.expression, "}")
	return g
}

func (g *grammar) ebnf(node *packrat.Node) (*EBNF, error) {
	out := &EBNF{}
	for _, p := range node.ChildrenOf(g.production.Type()) {
		production := &Production{Name: p.Token.Value}
		if e := p.FirstChild(g.expression.Type()); e != nil {
			expr, err := g.expr(e)
			if err != nil {
				return nil, err
			}
			production.Expression = expr
		}
		out.Productions = append(out.Productions, production)
	}
	return out, nil
}

func (g *grammar) expr(node *packrat.Node) (*Expression, error) {
	out := &Expression{}
	for _, s := range node.ChildrenOf(g.sequence.Type()) {
		seq := &Sequence{}
		for _, t := range s.ChildrenOf(g.term.Type()) {
			term, err := g.termOf(t.Children[0])
			if err != nil {
				return nil, err
			}
			seq.Terms = append(seq.Terms, term)
		}
		out.Alternatives = append(out.Alternatives, seq)
	}
	return out, nil
}

func (g *grammar) termOf(node *packrat.Node) (*Term, error) {
	if node.Type == packrat.TokenNode {
		return &Term{Name: node.Token.Value}, nil
	}
	if node.Is(g.literal.Type()) {
		literal, err := g.literalOf(node)
		return &Term{Literal: literal}, err
	}
	expr, err := g.expr(node.FirstChild(g.expression.Type()))
	if err != nil {
		return nil, err
	}
	switch node.Type {
	case g.group.Type():
		return &Term{Group: &Group{Expression: expr}}, nil
	case g.option.Type():
		return &Term{Option: &Option{Expression: expr}}, nil
	default:
		return &Term{Repetition: &Repetition{Expression: expr}}, nil
	}
}

func (g *grammar) literalOf(node *packrat.Node) (*Literal, error) {
	tokens := node.Tokens()
	start, err := unquote(tokens[0])
	if err != nil {
		return nil, err
	}
	out := &Literal{Start: start}
	if len(tokens) == 3 {
		end, err := unquote(tokens[2])
		if err != nil {
			return nil, err
		}
		out.End = &end
	}
	return out, nil
}

func unquote(token *lexer.Token) (string, error) {
	s, err := strconv.Unquote(token.Value)
	if err != nil {
		return "", lexer.Errorf(token.Pos, "invalid string %s: %s", token.Value, err)
	}
	return s, nil
}
