package packrat

// MatcherVisitor is called for each matcher in a grammar graph. Calling next visits the
// matcher's children.
type MatcherVisitor func(m Matcher, next func() error) error

// Visit every matcher reachable from m exactly once, in depth-first pre-order.
//
// Cycles and shared sub-graphs are visited once, so Visit terminates on recursive grammars.
func Visit(m Matcher, visitor MatcherVisitor) error {
	return visit(map[Matcher]bool{}, m, visitor)
}

func visit(seen map[Matcher]bool, m Matcher, visitor MatcherVisitor) error {
	if seen[m] {
		return nil
	}
	seen[m] = true
	return visitor(m, func() error {
		for _, child := range m.Children() {
			if err := visit(seen, child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}
