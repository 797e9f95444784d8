package packrat

import "github.com/alecthomas/packrat/lexer"

// An Event describes a match attempt.
type Event struct {
	// Matcher being attempted, with any memoizer or event wrappers removed.
	Matcher Matcher
	Start   int
	// End index, exclusive. Only set on exit.
	End int
	// Matched is only set on exit.
	Matched bool
	// Token at Start.
	Token *lexer.Token
}

// Rule returns the rule being attempted, or nil if the event is not for a rule.
func (e *Event) Rule() *Rule {
	r, _ := e.Matcher.(*Rule)
	return r
}

// A Listener is notified of match attempts by a decorated grammar.
type Listener interface {
	EnterRule(event *Event)
	ExitRule(event *Event)
	EnterMatcher(event *Event)
	ExitMatcher(event *Event)
}

// A ParseListener is additionally notified at the start and end of each parse.
type ParseListener interface {
	Listener
	BeginParse()
	EndParse()
}

// NopListener can be embedded by listeners only interested in some notifications.
type NopListener struct{}

func (NopListener) EnterRule(*Event)    {}
func (NopListener) ExitRule(*Event)     {}
func (NopListener) EnterMatcher(*Event) {}
func (NopListener) ExitMatcher(*Event)  {}

// Notifies listeners of a wrapped matcher's attempts.
type matcherAdapter struct {
	children  []Matcher
	listeners []Listener
}

func (a *matcherAdapter) Children() []Matcher { return a.children }
func (a *matcherAdapter) Kind() Kind          { return KindEvents }
func (a *matcherAdapter) String() string      { return a.children[0].String() }

func (a *matcherAdapter) Match(ctx *Context) bool {
	event := newEvent(ctx, a.children[0])
	for _, l := range a.listeners {
		l.EnterMatcher(event)
	}
	matched := a.children[0].Match(ctx)
	event.exit(ctx, matched)
	for _, l := range a.listeners {
		l.ExitMatcher(event)
	}
	return matched
}

// Notifies listeners of a wrapped rule's attempts.
type ruleMatcherAdapter struct {
	children  []Matcher
	listeners []Listener
}

func (a *ruleMatcherAdapter) Children() []Matcher { return a.children }
func (a *ruleMatcherAdapter) Kind() Kind          { return KindRuleEvents }
func (a *ruleMatcherAdapter) String() string      { return a.children[0].String() }

func (a *ruleMatcherAdapter) Match(ctx *Context) bool {
	event := newEvent(ctx, a.children[0])
	for _, l := range a.listeners {
		l.EnterRule(event)
	}
	matched := a.children[0].Match(ctx)
	event.exit(ctx, matched)
	for _, l := range a.listeners {
		l.ExitRule(event)
	}
	return matched
}

func newEvent(ctx *Context, matcher Matcher) *Event {
	return &Event{Matcher: Unwrap(matcher), Start: ctx.cursor, Token: ctx.Peek()}
}

func (e *Event) exit(ctx *Context, matched bool) {
	e.Matched = matched
	if matched {
		e.End = ctx.cursor
	} else {
		e.End = e.Start
	}
}
