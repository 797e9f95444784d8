package packrat

import (
	"fmt"
)

// A Decorator rewrites a grammar in place, wrapping matchers with memoizers and event
// adapters.
//
// Decoration must happen exactly once, before the grammar is first used.
type Decorator struct {
	memoize   bool
	listeners []Listener
	visited   map[Matcher]bool
	memoized  int
	adapted   int
}

// NewDecorator creates a Decorator.
//
// If memoize is true every non-leaf matcher is wrapped with a packrat cache. If any listeners
// are given every matcher is additionally wrapped with an event adapter.
func NewDecorator(memoize bool, listeners ...Listener) *Decorator {
	return &Decorator{memoize: memoize, listeners: listeners}
}

// Decorate is a shortcut for NewDecorator(memoize, listeners...).Decorate(grammar).
func Decorate(grammar *Grammar, memoize bool, listeners ...Listener) error {
	return NewDecorator(memoize, listeners...).Decorate(grammar)
}

// Listeners the Decorator notifies.
func (d *Decorator) Listeners() []Listener { return d.listeners }

func (d *Decorator) memoizeMatcher(matcher Matcher) Matcher {
	if d.memoize && !IsLeaf(matcher) {
		d.memoized++
		return Memoize(matcher)
	}
	return matcher
}

func (d *Decorator) eventize(original, memoized Matcher) Matcher {
	if len(d.listeners) == 0 {
		return memoized
	}
	d.adapted++
	if original.Kind() == KindRule {
		return &ruleMatcherAdapter{children: []Matcher{memoized}, listeners: d.listeners}
	}
	return &matcherAdapter{children: []Matcher{memoized}, listeners: d.listeners}
}

func (d *Decorator) decorateMatcher(matcher Matcher) {
	if d.visited[matcher] {
		return
	}
	d.visited[matcher] = true

	children := matcher.Children()
	for i, child := range children {
		d.decorateMatcher(child)
		children[i] = d.eventize(child, d.memoizeMatcher(child))
	}
}

// Decorate the grammar in place.
func (d *Decorator) Decorate(grammar *Grammar) error {
	if grammar.root == nil {
		return ErrNoRoot
	}
	if grammar.decorated {
		return fmt.Errorf("%s: %w", grammar.root, ErrAlreadyDecorated)
	}
	d.visited = map[Matcher]bool{}
	d.memoized, d.adapted = 0, 0

	original := grammar.root
	memoized := d.memoizeMatcher(original)
	eventized := d.eventize(original, memoized)
	// The root must remain addressable as a rule.
	if IsRule(eventized) {
		grammar.root = eventized
	}

	// Seed below any root wrappers so the root rule itself is not wrapped twice.
	d.decorateMatcher(original)
	grammar.decorated = true
	grammar.wrapped = d.memoize || len(d.listeners) > 0

	log.Debugf("decorated grammar %s: %d matchers visited, %d memoizers, %d event adapters",
		original, len(d.visited), d.memoized, d.adapted)
	return nil
}
