// Package ebnf compiles grammars in the EBNF form understood by golang.org/x/exp/ebnf into
// packrat grammars:
//
//      Production  = name "=" [ Expression ] "." .
//      Expression  = Alternative { "|" Alternative } .
//      Alternative = Term { Term } .
//      Term        = name | token [ "…" token ] | Group | Option | Repetition .
//      Group       = "(" Expression ")" .
//      Option      = "[" Expression "]" .
//      Repetition  = "{" Expression "}" .
//
// Each production reachable from the start production becomes a rule. A name refers to the
// production of that name if there is one, otherwise to the lexer symbol of that name. A
// token matches a token value exactly. Ranges are not supported.
package ebnf

import (
	"fmt"
	"io"
	"text/scanner"

	"golang.org/x/exp/ebnf"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/lexer"
)

// Parse an EBNF grammar from r and compile it.
func Parse(filename string, r io.Reader, start string, def lexer.Definition) (*packrat.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return Compile(grammar, start, def)
}

// Compile grammar into a packrat grammar rooted at the production start.
//
// Names are resolved against the symbols of def when no production exists for them.
func Compile(grammar ebnf.Grammar, start string, def lexer.Definition) (*packrat.Grammar, error) {
	if _, ok := grammar[start]; !ok {
		return nil, fmt.Errorf("unknown start production %q", start)
	}
	c := &compiler{
		grammar: grammar,
		symbols: def.Symbols(),
		out:     packrat.NewGrammar(),
	}
	if _, err := c.rule(start); err != nil {
		return nil, err
	}
	return c.out, nil
}

type compiler struct {
	grammar ebnf.Grammar
	symbols map[string]rune
	out     *packrat.Grammar
}

// Rules are created before their bodies are compiled, so recursive productions terminate.
func (c *compiler) rule(name string) (*packrat.Rule, error) {
	if rule, ok := c.out.Lookup(name); ok {
		return rule, nil
	}
	rule := c.out.Rule(name)
	production := c.grammar[name]
	if production.Expr == nil {
		rule.Is(packrat.Sequence())
		return rule, nil
	}
	body, err := c.expression(production.Expr)
	if err != nil {
		return nil, err
	}
	rule.Is(body)
	return rule, nil
}

func (c *compiler) expression(expr ebnf.Expression) (packrat.Matcher, error) {
	switch expr := expr.(type) {
	case ebnf.Alternative:
		exprs, err := c.expressions(expr)
		if err != nil {
			return nil, err
		}
		return packrat.FirstOf(exprs...), nil

	case ebnf.Sequence:
		exprs, err := c.expressions(expr)
		if err != nil {
			return nil, err
		}
		return packrat.Sequence(exprs...), nil

	case *ebnf.Group:
		return c.expression(expr.Body)

	case *ebnf.Option:
		body, err := c.expression(expr.Body)
		if err != nil {
			return nil, err
		}
		return packrat.Optional(body), nil

	case *ebnf.Repetition:
		body, err := c.expression(expr.Body)
		if err != nil {
			return nil, err
		}
		return packrat.ZeroOrMore(body), nil

	case *ebnf.Token:
		return packrat.Literal(expr.String), nil

	case *ebnf.Name:
		if _, ok := c.grammar[expr.String]; ok {
			rule, err := c.rule(expr.String)
			if err != nil {
				return nil, err
			}
			return rule, nil
		}
		if typ, ok := c.symbols[expr.String]; ok {
			return packrat.NamedTokenType(typ, expr.String), nil
		}
		return nil, lexer.Errorf(position(expr.Pos()), "unknown production or lexer symbol %q", expr.String)

	case *ebnf.Range:
		return nil, lexer.Errorf(position(expr.Pos()), "ranges are not supported")

	default:
		return nil, lexer.Errorf(position(expr.Pos()), "unsupported expression %T", expr)
	}
}

func (c *compiler) expressions(exprs []ebnf.Expression) ([]interface{}, error) {
	out := make([]interface{}, 0, len(exprs))
	for _, expr := range exprs {
		m, err := c.expression(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func position(pos scanner.Position) lexer.Position {
	return lexer.Position(pos)
}
