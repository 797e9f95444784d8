package packrat

import (
	"fmt"

	"github.com/alecthomas/packrat/lexer"
)

type leaf struct{}

func (leaf) Children() []Matcher { return nil }
func (leaf) Kind() Kind          { return KindLeaf }

// Consume the next token if accept returns true for it.
func matchToken(ctx *Context, accept func(token *lexer.Token) bool) bool {
	token := ctx.Peek()
	if token.EOF() || !accept(token) {
		ctx.Fail()
		return false
	}
	ctx.Next()
	return true
}

// Match a token value exactly "...".
type literal struct {
	leaf
	value string
}

// Literal matches a token whose value is value.
func Literal(value string) Matcher {
	return &literal{value: value}
}

func (l *literal) Match(ctx *Context) bool {
	return matchToken(ctx, func(token *lexer.Token) bool { return token.Value == l.value })
}

func (l *literal) String() string { return fmt.Sprintf("%q", l.value) }

// <type> - lexer token type reference
type tokenType struct {
	leaf
	typ  rune
	name string
}

// TokenType matches a token of the given lexer type.
func TokenType(typ rune) Matcher {
	return &tokenType{typ: typ}
}

// NamedTokenType matches a token of the given lexer type, rendered as <name>.
func NamedTokenType(typ rune, name string) Matcher {
	return &tokenType{typ: typ, name: name}
}

func (t *tokenType) Match(ctx *Context) bool {
	return matchToken(ctx, func(token *lexer.Token) bool { return token.Type == t.typ })
}

// Name the unnamed token type matchers reachable from root after the symbols of def.
func nameTokenTypes(root Matcher, def lexer.Definition) {
	names := lexer.SymbolsByRune(def)
	_ = Visit(root, func(m Matcher, next func() error) error {
		if t, ok := m.(*tokenType); ok && t.name == "" {
			t.name = names[t.typ]
		}
		return next()
	})
}

func (t *tokenType) String() string {
	if t.name != "" {
		return "<" + t.name + ">"
	}
	return fmt.Sprintf("<%d>", t.typ)
}

// A class of token types.
type tokenClass struct {
	leaf
	name  string
	types map[rune]bool
}

// TokenClass matches a token whose type is any of types.
func TokenClass(name string, types ...rune) Matcher {
	set := make(map[rune]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return &tokenClass{name: name, types: set}
}

func (t *tokenClass) Match(ctx *Context) bool {
	return matchToken(ctx, func(token *lexer.Token) bool { return t.types[token.Type] })
}

func (t *tokenClass) String() string { return "<" + t.name + ">" }

// Matchers are compared by identity, so they must not be zero-sized.
type anyToken struct {
	leaf
	_ byte
}

// AnyToken matches any token other than EOF.
func AnyToken() Matcher { return &anyToken{} }

func (a *anyToken) Match(ctx *Context) bool {
	return matchToken(ctx, func(*lexer.Token) bool { return true })
}

func (a *anyToken) String() string { return "." }

// Consumes the remaining tokens on the current line.
//
// This scans a variable number of tokens and so is memoized like a composite.
type tillNewLine struct {
	_ byte
}

// TillNewLine matches every token on the same line as the previously consumed token (line 1
// at the start of input). It always succeeds.
func TillNewLine() Matcher { return &tillNewLine{} }

func (t *tillNewLine) Children() []Matcher { return nil }
func (t *tillNewLine) Kind() Kind          { return KindComposite }
func (t *tillNewLine) String() string      { return "tillNewLine()" }

func (t *tillNewLine) Match(ctx *Context) bool {
	line := 1
	if prev := ctx.Previous(); prev != nil {
		line = prev.Pos.Line
	}
	for token := ctx.Peek(); !token.EOF() && token.Pos.Line == line; token = ctx.Peek() {
		ctx.Next()
	}
	return true
}
