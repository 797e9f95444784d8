package packrat

import "fmt"

// Kind classifies a Matcher for the decoration pass.
type Kind int

const (
	// KindComposite matchers combine their children (sequence, choice, repetition, predicates).
	KindComposite Kind = iota
	// KindRule matchers name a grammar rule and own exactly one body matcher.
	KindRule
	// KindLeaf matchers match a single token and are never memoized.
	KindLeaf
	// KindMemoizer wraps a matcher with a packrat cache.
	KindMemoizer
	// KindEvents wraps a non-rule matcher with listener notifications.
	KindEvents
	// KindRuleEvents wraps a rule matcher with listener notifications.
	KindRuleEvents
)

func (k Kind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindRule:
		return "rule"
	case KindLeaf:
		return "leaf"
	case KindMemoizer:
		return "memoizer"
	case KindEvents:
		return "events"
	case KindRuleEvents:
		return "rule-events"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Matcher is a node in the grammar graph.
//
// Implementations must be pointer types: matchers are compared, cached and tracked by
// identity, never by structure.
type Matcher interface {
	// Match attempts to consume input at the cursor of ctx.
	//
	// On success the cursor is advanced and any produced AST nodes are appended to ctx. On
	// failure Match returns false and leaves ctx as it found it.
	Match(ctx *Context) bool
	// Children returns the matcher's child slots.
	//
	// The returned slice is the matcher's own storage: assigning to an element rewrites the
	// slot for every parent sharing this matcher.
	Children() []Matcher
	Kind() Kind
	String() string
}

// Unwrap removes any memoizer and event wrappers from m.
func Unwrap(m Matcher) Matcher {
	for {
		switch m.Kind() {
		case KindMemoizer, KindEvents, KindRuleEvents:
			m = m.Children()[0]
		default:
			return m
		}
	}
}

// IsRule returns true if m is usable as a rule: either a rule or a rule event adapter.
func IsRule(m Matcher) bool {
	k := m.Kind()
	return k == KindRule || k == KindRuleEvents
}

// IsLeaf returns true if m is a cheap single-token matcher.
func IsLeaf(m Matcher) bool {
	return m.Kind() == KindLeaf
}

// Convert an expression in a grammar definition to a Matcher.
//
// Strings match token values, runes match token types.
func toMatcher(expr interface{}) Matcher {
	switch e := expr.(type) {
	case Matcher:
		return e
	case string:
		return Literal(e)
	case rune:
		return TokenType(e)
	case int:
		// Untyped constants such as scanner.Ident.
		return TokenType(rune(e))
	}
	panic(fmt.Sprintf("unsupported grammar expression %T", expr))
}

func toMatchers(exprs []interface{}) []Matcher {
	out := make([]Matcher, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, toMatcher(e))
	}
	return out
}
