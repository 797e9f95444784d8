package packrat

import (
	"fmt"
)

// A Grammar is a graph of rules with a designated root rule.
type Grammar struct {
	root      Matcher
	rules     map[string]*Rule
	order     []*Rule
	decorated bool
	// wrapped is set when decoration added memoizers or event adapters.
	wrapped bool
}

// NewGrammar creates an empty Grammar.
func NewGrammar() *Grammar {
	return &Grammar{rules: map[string]*Rule{}}
}

// Rule returns the rule called name, creating it if it does not exist.
//
// The first rule created becomes the root unless SetRoot is called.
func (g *Grammar) Rule(name string) *Rule {
	if r, ok := g.rules[name]; ok {
		return r
	}
	r := NewRule(name)
	g.rules[name] = r
	g.order = append(g.order, r)
	if g.root == nil {
		g.root = r
	}
	return r
}

// Lookup a rule by name.
func (g *Grammar) Lookup(name string) (*Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Rules in order of creation.
func (g *Grammar) Rules() []*Rule { return g.order }

// SetRoot sets the rule matching a whole input.
func (g *Grammar) SetRoot(rule *Rule) *Grammar {
	g.root = rule
	return g
}

// Root returns the matcher for the whole input.
//
// After decoration this is either the original root rule or an event adapter wrapping it.
func (g *Grammar) Root() Matcher { return g.root }

// Decorated returns true once the grammar has been decorated.
func (g *Grammar) Decorated() bool { return g.decorated }

// Validate that every rule reachable from the root has a body.
func (g *Grammar) Validate() error {
	if g.root == nil {
		return ErrNoRoot
	}
	return Visit(g.root, func(m Matcher, next func() error) error {
		if r, ok := m.(*Rule); ok && !r.Defined() {
			return fmt.Errorf("%s: %w", r.name, ErrUndefinedRule)
		}
		return next()
	})
}

// String returns the EBNF for the grammar.
func (g *Grammar) String() string {
	if g.root == nil {
		return ""
	}
	return EBNF(g.root)
}
