package packrat

import (
	"io"

	"github.com/alecthomas/packrat/lexer"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Lexer is an Option that sets the lexer to use with the given grammar.
func Lexer(def lexer.Definition) Option {
	return func(p *Parser) error {
		p.lex = def
		return nil
	}
}

// UseMemoization wraps every non-leaf matcher of the grammar with a packrat cache.
//
// This bounds the work of backtracking grammars to linear time, at the expense of memory.
func UseMemoization() Option {
	return func(p *Parser) error {
		p.memoize = true
		return nil
	}
}

// Listen notifies listeners of every match attempt, in order.
func Listen(listeners ...Listener) Option {
	return func(p *Parser) error {
		p.listeners = append(p.listeners, listeners...)
		return nil
	}
}

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return Listen(TraceListener(w))
}
