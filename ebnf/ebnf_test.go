package ebnf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/ebnf"
	"github.com/alecthomas/packrat/lexer"
)

const arithmetic = `
Expr = Term { ("+" | "-") Term } .
Term = Factor { ("*" | "/") Factor } .
Factor = Int | "(" Expr ")" .
Unused = "x" .
`

func compile(t *testing.T, grammar, start string) *packrat.Grammar {
	t.Helper()
	g, err := ebnf.Parse("test.ebnf", strings.NewReader(grammar), start, lexer.TextScannerLexer)
	require.NoError(t, err)
	return g
}

func TestCompile(t *testing.T) {
	g := compile(t, arithmetic, "Expr")
	expected := `Expr = Term { (("+" | "-") Term) } .
Term = Factor { (("*" | "/") Factor) } .
Factor = <Int> | ("(" Expr ")") .`
	require.Equal(t, expected, g.String())
	_, ok := g.Lookup("Unused")
	require.False(t, ok, "unreachable productions are not compiled")
}

func TestParseArithmetic(t *testing.T) {
	for _, memoize := range []bool{false, true} {
		options := []packrat.Option{}
		if memoize {
			options = append(options, packrat.UseMemoization())
		}
		parser, err := packrat.New(compile(t, arithmetic, "Expr"), options...)
		require.NoError(t, err)
		ast, err := parser.ParseString("", "1 + (2 - 3)")
		require.NoError(t, err)
		require.Equal(t,
			`Expr(Term(Factor("1")) "+" Term(Factor("(" Expr(Term(Factor("2")) "-" Term(Factor("3"))) ")")))`,
			ast.String())
	}
}

func TestParseFailure(t *testing.T) {
	parser, err := packrat.New(compile(t, arithmetic, "Expr"))
	require.NoError(t, err)
	_, err = parser.ParseString("", "1 + (2 - 3")
	require.EqualError(t, err, `1:11: unexpected token "<EOF>"`)
}

func TestEmptyProduction(t *testing.T) {
	parser, err := packrat.New(compile(t, `List = "[" Empty "]" . Empty = .`, "List"))
	require.NoError(t, err)
	ast, err := parser.ParseString("", "[]")
	require.NoError(t, err)
	require.Equal(t, `List("[" Empty() "]")`, ast.String())
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		start   string
		err     string
	}{
		{name: "UnknownName", grammar: `Expr = Int Foo .`, start: "Expr",
			err: `test.ebnf:1:12: unknown production or lexer symbol "Foo"`},
		{name: "Range", grammar: `Digit = "0" … "9" .`, start: "Digit",
			err: `test.ebnf:1:9: ranges are not supported`},
		{name: "UnknownStart", grammar: `Expr = Int .`, start: "Missing",
			err: `unknown start production "Missing"`},
	}
	for _, test := range tests {
		// nolint: scopelint
		t.Run(test.name, func(t *testing.T) {
			_, err := ebnf.Parse("test.ebnf", strings.NewReader(test.grammar), test.start, lexer.TextScannerLexer)
			require.EqualError(t, err, test.err)
		})
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := ebnf.Parse("test.ebnf", strings.NewReader(`Expr = Int`), "Expr", lexer.TextScannerLexer)
	require.Error(t, err)
}
