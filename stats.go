package packrat

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"
)

// RuleStatistics are the counters collected for a single rule.
type RuleStatistics struct {
	Name        string
	Invocations int
	Matches     int
	// Duration is inclusive of nested rules.
	Duration time.Duration
}

// Statistics is a Listener collecting per-rule counters.
type Statistics struct {
	// Rules keyed by identity. Distinct rules may share a name.
	Rules map[*Rule]*RuleStatistics
	// Matchers is the number of non-rule match attempts.
	Matchers int
	started  []time.Time
}

var _ Listener = &Statistics{}

// NewStatistics creates an empty Statistics listener.
func NewStatistics() *Statistics {
	return &Statistics{Rules: map[*Rule]*RuleStatistics{}}
}

func (s *Statistics) rule(e *Event) *RuleStatistics {
	rule := e.Rule()
	rs, ok := s.Rules[rule]
	if !ok {
		rs = &RuleStatistics{Name: rule.Name()}
		s.Rules[rule] = rs
	}
	return rs
}

func (s *Statistics) EnterRule(e *Event) {
	s.rule(e).Invocations++
	s.started = append(s.started, time.Now())
}

func (s *Statistics) ExitRule(e *Event) {
	rs := s.rule(e)
	if e.Matched {
		rs.Matches++
	}
	last := len(s.started) - 1
	rs.Duration += time.Since(s.started[last])
	s.started = s.started[:last]
}

func (s *Statistics) EnterMatcher(*Event) { s.Matchers++ }
func (s *Statistics) ExitMatcher(*Event)  {}

// Sorted returns rule statistics ordered by decreasing invocations, then by name.
func (s *Statistics) Sorted() []*RuleStatistics {
	out := make([]*RuleStatistics, 0, len(s.Rules))
	for _, rs := range s.Rules {
		out = append(out, rs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Invocations != out[j].Invocations {
			return out[i].Invocations > out[j].Invocations
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Statistics) String() string {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tINVOCATIONS\tMATCHES\tTIME")
	for _, rs := range s.Sorted() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", rs.Name, rs.Invocations, rs.Matches, rs.Duration)
	}
	_ = w.Flush()
	return buf.String()
}
