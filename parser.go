package packrat

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/packrat/lexer"
)

// A Parser matches token streams against a decorated Grammar.
type Parser struct {
	grammar   *Grammar
	lex       lexer.Definition
	memoize   bool
	listeners []Listener
}

// New validates and decorates grammar, and returns a Parser for it.
//
// A grammar may only be decorated once, so a grammar can only be shared between Parsers when
// none of them requests memoization or listeners.
func New(grammar *Grammar, options ...Option) (*Parser, error) {
	p := &Parser{grammar: grammar, lex: lexer.DefaultDefinition}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	if err := grammar.Validate(); err != nil {
		return nil, err
	}
	nameTokenTypes(grammar.Root(), p.lex)
	if root, ok := Unwrap(grammar.Root()).(*Rule); ok && root.skip != skipNever {
		return nil, fmt.Errorf("%s: root rule can not be skipped", root)
	}
	if grammar.Decorated() {
		if p.memoize || len(p.listeners) > 0 || grammar.wrapped {
			return nil, fmt.Errorf("%s: %w", Unwrap(grammar.Root()), ErrAlreadyDecorated)
		}
		return p, nil
	}
	if err := Decorate(grammar, p.memoize, p.listeners...); err != nil {
		return nil, err
	}
	return p, nil
}

// MustBuild calls New and panics on error.
func MustBuild(grammar *Grammar, options ...Option) *Parser {
	p, err := New(grammar, options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Grammar the Parser matches.
func (p *Parser) Grammar() *Grammar { return p.grammar }

// Lexer returns the lexer definition used by the Parser.
func (p *Parser) Lexer() lexer.Definition { return p.lex }

// String returns the EBNF for the grammar.
func (p *Parser) String() string { return p.grammar.String() }

// Parse from r using the Parser's lexer.
func (p *Parser) Parse(filename string, r io.Reader) (*Node, error) {
	if filename == "" {
		filename = lexer.NameOfReader(r)
	}
	lex, err := p.lex.Lex(filename, r)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	return p.ParseTokens(tokens)
}

// ParseString from s.
func (p *Parser) ParseString(filename, s string) (*Node, error) {
	return p.Parse(filename, strings.NewReader(s))
}

// ParseBytes from b.
func (p *Parser) ParseBytes(filename string, b []byte) (*Node, error) {
	return p.Parse(filename, bytes.NewReader(b))
}

// ParseTokens matches the whole of tokens against the grammar and returns the root node.
func (p *Parser) ParseTokens(tokens []lexer.Token) (*Node, error) {
	input := NewInput(tokens)
	ctx := NewContext(input)
	for _, l := range p.listeners {
		if pl, ok := l.(ParseListener); ok {
			pl.BeginParse()
		}
	}
	defer func() {
		for _, l := range p.listeners {
			if pl, ok := l.(ParseListener); ok {
				pl.EndParse()
			}
		}
	}()

	matched := p.grammar.Root().Match(ctx)
	log.Debugf("parsed %d tokens with %s: matched=%t cursor=%d memo hits=%d misses=%d",
		input.Len(), Unwrap(p.grammar.Root()), matched, ctx.cursor, ctx.run.hits, ctx.run.misses)
	if !matched {
		return nil, unexpectedToken(ctx, ctx.run.furthest)
	}
	if ctx.cursor < input.Len() {
		index := ctx.run.furthest
		if index < ctx.cursor {
			index = ctx.cursor
		}
		return nil, unexpectedToken(ctx, index)
	}
	return ctx.nodes[0], nil
}

func unexpectedToken(ctx *Context, index int) error {
	return &UnexpectedTokenError{Unexpected: *ctx.input.Token(index), Index: index}
}
