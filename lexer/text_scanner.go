package lexer

import (
	"bytes"
	"io"
	"strings"
	"text/scanner"
)

// TextScannerLexer is a lexer that uses the text/scanner module.
var (
	TextScannerLexer Definition = &textScannerDefinition{}

	// DefaultDefinition defines properties for the default lexer.
	DefaultDefinition = TextScannerLexer
)

// NewTextScannerLexer constructs a Definition that uses the text/scanner module,
// letting "configure" adjust the scanner before each lex (eg. to keep comments).
func NewTextScannerLexer(configure func(*scanner.Scanner)) Definition {
	return &textScannerDefinition{configure: configure}
}

type textScannerDefinition struct {
	configure func(*scanner.Scanner)
}

func (d *textScannerDefinition) Lex(filename string, r io.Reader) (Lexer, error) {
	l := Lex(filename, r)
	if d.configure != nil {
		d.configure(l.(*textScannerLexer).scanner)
	}
	return l, nil
}

func (d *textScannerDefinition) Symbols() map[string]rune {
	return map[string]rune{
		"EOF":       EOF,
		"Char":      scanner.Char,
		"Ident":     scanner.Ident,
		"Int":       scanner.Int,
		"Float":     scanner.Float,
		"String":    scanner.String,
		"RawString": scanner.RawString,
		"Comment":   scanner.Comment,
	}
}

// textScannerLexer is a Lexer based on text/scanner.Scanner
type textScannerLexer struct {
	scanner  *scanner.Scanner
	filename string
	err      error
}

// Lex an io.Reader with text/scanner.Scanner.
//
// This provides very fast lexing of source code compatible with Go tokens. Token values are
// the raw token text, so string literals keep their quotes.
func Lex(filename string, r io.Reader) Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	lexer := &textScannerLexer{filename: filename, scanner: s}
	s.Error = func(s *scanner.Scanner, msg string) {
		// Single quoted strings are lexed as chars.
		if !strings.HasSuffix(msg, "char literal") {
			pos := Position(s.Pos())
			pos.Filename = filename
			lexer.err = Errorf(pos, "%s", msg)
		}
	}
	return lexer
}

// LexBytes returns a new default lexer over bytes.
func LexBytes(filename string, b []byte) Lexer {
	return Lex(filename, bytes.NewReader(b))
}

// LexString returns a new default lexer over a string.
func LexString(filename, s string) Lexer {
	return Lex(filename, strings.NewReader(s))
}

func (t *textScannerLexer) Next() (Token, error) {
	typ := t.scanner.Scan()
	text := t.scanner.TokenText()
	pos := Position(t.scanner.Position)
	pos.Filename = t.filename
	if t.err != nil {
		return Token{}, t.err
	}
	return Token{
		Type:  typ,
		Value: text,
		Pos:   pos,
	}, nil
}
