package packrat

import (
	"fmt"
	"strings"
)

type composite struct {
	children []Matcher
}

func (c *composite) Children() []Matcher { return c.children }
func (c *composite) Kind() Kind          { return KindComposite }

func (c *composite) join(sep string) string {
	out := make([]string, 0, len(c.children))
	for _, child := range c.children {
		out = append(out, child.String())
	}
	return strings.Join(out, sep)
}

func (c *composite) matchAll(ctx *Context) bool {
	m := ctx.mark()
	for _, child := range c.children {
		if !child.Match(ctx) {
			ctx.reset(m)
			return false
		}
	}
	return true
}

// A body is either a single matcher or the sequence of several.
func body(exprs []interface{}) []Matcher {
	if len(exprs) == 1 {
		return []Matcher{toMatcher(exprs[0])}
	}
	return []Matcher{Sequence(exprs...)}
}

// <expr> <expr> ...
type sequence struct{ composite }

// Sequence matches each of exprs in order.
func Sequence(exprs ...interface{}) Matcher {
	return &sequence{composite{toMatchers(exprs)}}
}

func (s *sequence) Match(ctx *Context) bool { return s.matchAll(ctx) }
func (s *sequence) String() string          { return fmt.Sprintf("(%s)", s.join(" ")) }

// <expr> | <expr> ...
type firstOf struct{ composite }

// FirstOf matches the first of exprs that matches.
func FirstOf(exprs ...interface{}) Matcher {
	return &firstOf{composite{toMatchers(exprs)}}
}

func (f *firstOf) Match(ctx *Context) bool {
	m := ctx.mark()
	for _, child := range f.children {
		if child.Match(ctx) {
			return true
		}
		ctx.reset(m)
	}
	return false
}

func (f *firstOf) String() string { return fmt.Sprintf("(%s)", f.join(" | ")) }

// [ <expr> ]
type optional struct{ composite }

// Optional matches exprs zero or one time.
func Optional(exprs ...interface{}) Matcher {
	return &optional{composite{body(exprs)}}
}

func (o *optional) Match(ctx *Context) bool {
	o.matchAll(ctx)
	return true
}

func (o *optional) String() string { return fmt.Sprintf("[ %s ]", o.join(" ")) }

// { <expr> }
type repetition struct {
	composite
	min int
}

// ZeroOrMore matches exprs as many times as possible.
func ZeroOrMore(exprs ...interface{}) Matcher {
	return &repetition{composite: composite{body(exprs)}}
}

// OneOrMore matches exprs at least once and then as many times as possible.
func OneOrMore(exprs ...interface{}) Matcher {
	return &repetition{composite: composite{body(exprs)}, min: 1}
}

// Match a repetition. An iteration that consumes nothing terminates the repetition.
func (r *repetition) Match(ctx *Context) bool {
	start := ctx.mark()
	count := 0
	for {
		before := ctx.cursor
		if !r.matchAll(ctx) {
			break
		}
		count++
		if ctx.cursor == before {
			break
		}
	}
	if count < r.min {
		ctx.reset(start)
		return false
	}
	return true
}

func (r *repetition) String() string {
	if r.min == 0 {
		return fmt.Sprintf("{ %s }", r.join(" "))
	}
	return fmt.Sprintf("%s+", r.join(" "))
}

// !<expr>
type not struct{ composite }

// Not succeeds, consuming nothing, only if exprs do not match.
func Not(exprs ...interface{}) Matcher {
	return &not{composite{body(exprs)}}
}

func (n *not) Match(ctx *Context) bool {
	m := ctx.mark()
	matched := n.matchAll(ctx)
	ctx.reset(m)
	if matched {
		ctx.Fail()
	}
	return !matched
}

func (n *not) String() string { return fmt.Sprintf("!%s", n.join(" ")) }

// &<expr>
type next struct{ composite }

// Next succeeds, consuming nothing, only if exprs match.
func Next(exprs ...interface{}) Matcher {
	return &next{composite{body(exprs)}}
}

func (n *next) Match(ctx *Context) bool {
	m := ctx.mark()
	matched := n.matchAll(ctx)
	ctx.reset(m)
	return matched
}

func (n *next) String() string { return fmt.Sprintf("&%s", n.join(" ")) }
