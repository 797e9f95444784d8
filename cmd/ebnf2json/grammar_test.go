package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/packrat"
)

func TestParseEBNF(t *testing.T) {
	g := newGrammar()
	parser, err := packrat.New(g.Grammar, packrat.UseMemoization())
	require.NoError(t, err)
	ast, err := parser.ParseString("", `
Digit = "0" … "9" .
Number = Digit { Digit } | "-" ( Number ) | [ "+" ] .
Empty = .
`)
	require.NoError(t, err)
	actual, err := g.ebnf(ast)
	require.NoError(t, err)

	nine := "9"
	expected := &EBNF{Productions: []*Production{
		{Name: "Digit", Expression: &Expression{Alternatives: []*Sequence{
			{Terms: []*Term{{Literal: &Literal{Start: "0", End: &nine}}}},
		}}},
		{Name: "Number", Expression: &Expression{Alternatives: []*Sequence{
			{Terms: []*Term{
				{Name: "Digit"},
				{Repetition: &Repetition{Expression: &Expression{Alternatives: []*Sequence{
					{Terms: []*Term{{Name: "Digit"}}},
				}}}},
			}},
			{Terms: []*Term{
				{Literal: &Literal{Start: "-"}},
				{Group: &Group{Expression: &Expression{Alternatives: []*Sequence{
					{Terms: []*Term{{Name: "Number"}}},
				}}}},
			}},
			{Terms: []*Term{
				{Option: &Option{Expression: &Expression{Alternatives: []*Sequence{
					{Terms: []*Term{{Literal: &Literal{Start: "+"}}}},
				}}}},
			}},
		}}},
		{Name: "Empty"},
	}}
	require.Equal(t, expected, actual)

	b, err := json.Marshal(actual.Productions[2])
	require.NoError(t, err)
	require.Equal(t, `{"Name":"Empty"}`, string(b))
}

func TestParseEBNFError(t *testing.T) {
	parser, err := packrat.New(newGrammar().Grammar)
	require.NoError(t, err)
	_, err = parser.ParseString("", `A = "a" | .`)
	require.EqualError(t, err, `1:11: unexpected token "."`)
}
