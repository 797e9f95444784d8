package packrat

import (
	"github.com/alecthomas/packrat/lexer"
)

// Input is the token stream matched by a grammar.
//
// The final token is always EOF, so an input of n tokens has n+1 positions.
type Input struct {
	tokens []lexer.Token
}

// NewInput copies tokens into an Input, appending an EOF token if one is not present.
func NewInput(tokens []lexer.Token) *Input {
	out := make([]lexer.Token, 0, len(tokens)+1)
	for _, t := range tokens {
		if t.EOF() {
			out = append(out, t)
			return &Input{tokens: out}
		}
		out = append(out, t)
	}
	var pos lexer.Position
	if len(out) > 0 {
		pos = out[len(out)-1].Pos
	}
	return &Input{tokens: append(out, lexer.EOFToken(pos))}
}

// Len is the number of tokens, excluding EOF.
func (i *Input) Len() int { return len(i.tokens) - 1 }

// Token at index. Indexes past the end return the EOF token.
//
// The returned pointer is stable for the lifetime of the Input, so tokens can be compared by
// identity.
func (i *Input) Token(index int) *lexer.Token {
	if index >= len(i.tokens) {
		index = len(i.tokens) - 1
	}
	return &i.tokens[index]
}

// State of a single top-level parse.
type run struct {
	memos    map[Matcher]*Memoizer
	hits     int
	misses   int
	furthest int
}

// Context for a single match attempt.
//
// A Context is owned by one parse and must not be shared.
type Context struct {
	input  *Input
	cursor int
	nodes  []*Node
	run    *run
}

// NewContext creates a Context positioned at the start of input.
func NewContext(input *Input) *Context {
	return &Context{
		input: input,
		run:   &run{memos: map[Matcher]*Memoizer{}},
	}
}

// A mark records the state of a Context so it can be restored on backtrack.
type mark struct {
	cursor int
	nodes  int
}

func (c *Context) mark() mark { return mark{c.cursor, len(c.nodes)} }

func (c *Context) reset(m mark) {
	c.cursor = m.cursor
	for i := m.nodes; i < len(c.nodes); i++ {
		c.nodes[i] = nil
	}
	c.nodes = c.nodes[:m.nodes]
}

// Input being matched.
func (c *Context) Input() *Input { return c.input }

// Cursor is the index of the next token.
func (c *Context) Cursor() int { return c.cursor }

// Peek at the next token without consuming it.
func (c *Context) Peek() *lexer.Token { return c.input.Token(c.cursor) }

// Previous returns the last consumed token, or nil at the start of input.
func (c *Context) Previous() *lexer.Token {
	if c.cursor == 0 {
		return nil
	}
	return c.input.Token(c.cursor - 1)
}

// Next consumes the next token and appends a token node for it.
//
// Consuming EOF is not permitted.
func (c *Context) Next() *lexer.Token {
	token := c.input.Token(c.cursor)
	if token.EOF() {
		panic("packrat: attempt to consume EOF")
	}
	c.nodes = append(c.nodes, &Node{Type: TokenNode, Token: token, Start: c.cursor, End: c.cursor + 1})
	c.cursor++
	return token
}

// Nodes produced so far in this attempt.
func (c *Context) Nodes() []*Node { return c.nodes }

// Fail records that a match failed at the current cursor, for error reporting.
func (c *Context) Fail() {
	if c.cursor > c.run.furthest {
		c.run.furthest = c.cursor
	}
}

// memo returns the packrat cache of matcher m for this parse, allocating it on first use.
//
// Every memoizer wrapping m shares the cache.
func (c *Context) memo(m Matcher) *Memoizer {
	memo, ok := c.run.memos[m]
	if !ok {
		memo = NewMemoizer(c.input.Len())
		c.run.memos[m] = memo
	}
	return memo
}
