package lexer

import (
	"fmt"
	"io"
)

// EOF is the type of the token terminating every token stream.
const EOF rune = -1

// EOFToken returns the terminating token of a stream ending at pos.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// A Definition produces Lexers and names the token types they emit.
type Definition interface {
	// Symbols maps symbolic token type names to the (negative) runes used as token types,
	// in the manner of text/scanner: "EOF" is -1, "Ident" -2 and so on.
	Symbols() map[string]rune
	// Lex the content of r. filename is attached to the position of every token.
	Lex(filename string, r io.Reader) (Lexer, error)
}

// A Lexer returns tokens from a source, ending with an EOF token.
type Lexer interface {
	Next() (Token, error)
}

// SymbolsByRune inverts the symbol table of def.
func SymbolsByRune(def Definition) map[rune]string {
	symbols := def.Symbols()
	out := make(map[rune]string, len(symbols))
	for name, typ := range symbols {
		out[typ] = name
	}
	return out
}

// NameOfReader returns the file name of r if it has one, eg. an *os.File.
func NameOfReader(r interface{}) string {
	if named, ok := r.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}

// ConsumeAll drains lexer, returning every token up to and including EOF.
func ConsumeAll(lexer Lexer) ([]Token, error) {
	var tokens []Token
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.EOF() {
			return tokens, nil
		}
	}
}

// Position of a token in its source. Line and Column are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

// String renders the position as [filename:]line:column.
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A Token matched by packrat leaf matchers.
type Token struct {
	// Type is one of the runes of the lexer's Definition.Symbols(), or the character itself
	// for single character tokens.
	Type  rune
	Value string
	Pos   Position
}

func (t Token) EOF() bool { return t.Type == EOF }

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.Pos == (Position{}) {
		return fmt.Sprintf("Token{%d, %q}", t.Type, t.Value)
	}
	return fmt.Sprintf("Token@%s{%d, %q}", t.Pos, t.Type, t.Value)
}
