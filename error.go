package packrat

import (
	"errors"
	"fmt"

	"github.com/alecthomas/packrat/lexer"
)

var (
	// ErrNoRoot is returned when decorating or parsing with a grammar that has no root rule.
	ErrNoRoot = errors.New("grammar has no root rule")
	// ErrAlreadyDecorated is returned when a grammar is decorated a second time.
	ErrAlreadyDecorated = errors.New("grammar is already decorated")
	// ErrUndefinedRule is returned when a rule reachable from the root has no body.
	ErrUndefinedRule = errors.New("rule is not defined")
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

var (
	_ Error = &UnexpectedTokenError{}
	_ Error = &lexer.Error{}
)

// UnexpectedTokenError is returned by Parse when an unexpected token is encountered.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	// Index of the unexpected token in the input.
	Index int
}

func (u *UnexpectedTokenError) Error() string { return lexer.FormatError(u.Position(), u.Message()) }

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	return fmt.Sprintf("unexpected token %q", u.Unexpected)
}

func (u *UnexpectedTokenError) Position() lexer.Position { return u.Unexpected.Pos } // nolint: golint
