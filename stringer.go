package packrat

import (
	"bytes"
	"fmt"
	"strings"
)

// EBNF renders every rule reachable from root as an EBNF production, in depth-first order.
//
// Memoizer and event wrappers are transparent.
func EBNF(root Matcher) string {
	out := []string{}
	_ = Visit(root, func(m Matcher, next func() error) error {
		if r, ok := m.(*Rule); ok && r.Defined() {
			out = append(out, fmt.Sprintf("%s = %s .", r.name, production(r.children[0])))
		}
		return next()
	})
	return strings.Join(out, "\n")
}

// Top level sequences and alternatives are not grouped.
func production(m Matcher) string {
	switch m := Unwrap(m).(type) {
	case *sequence:
		return m.join(" ")
	case *firstOf:
		return m.join(" | ")
	default:
		return m.String()
	}
}

// Dump renders the structure of the graph rooted at m, one matcher per line, including any
// wrappers. Matchers with children that have already been dumped are elided with "...".
func Dump(m Matcher) string {
	w := &bytes.Buffer{}
	dump(w, map[Matcher]bool{}, m, 0)
	return w.String()
}

func dump(w *bytes.Buffer, seen map[Matcher]bool, m Matcher, depth int) {
	fmt.Fprintf(w, "%s%s %s", strings.Repeat("  ", depth), m.Kind(), m)
	if seen[m] && len(m.Children()) > 0 {
		fmt.Fprintln(w, " ...")
		return
	}
	seen[m] = true
	fmt.Fprintln(w)
	for _, child := range m.Children() {
		dump(w, seen, child, depth+1)
	}
}
