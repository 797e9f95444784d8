package packrat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/lexer"
)

func TestUnexpectedTokenError(t *testing.T) {
	err := &packrat.UnexpectedTokenError{
		Unexpected: lexer.Token{Type: ')', Value: ")", Pos: lexer.Position{Filename: "in.txt", Line: 2, Column: 5}},
		Index:      7,
	}
	require.EqualError(t, err, `in.txt:2:5: unexpected token ")"`)
	require.Equal(t, `unexpected token ")"`, err.Message())
	require.Equal(t, 2, err.Position().Line)

	var perr packrat.Error = err
	require.Equal(t, "in.txt:2:5", perr.Position().String())
}

func TestUnexpectedEOF(t *testing.T) {
	err := &packrat.UnexpectedTokenError{Unexpected: lexer.EOFToken(lexer.Position{Line: 1, Column: 3})}
	require.EqualError(t, err, `1:3: unexpected token "<EOF>"`)
}

func TestLexerErrorFormatting(t *testing.T) {
	require.EqualError(t, lexer.Errorf(lexer.Position{}, "bad %s", "thing"), "bad thing")
	require.EqualError(t, lexer.Errorf(lexer.Position{Filename: "f"}, "bad"), "f: bad")
}
