// Package pattern parses structural search patterns, which describe a node by its position
// in a tree:
//
//      a b this(*) c            any node preceded by a and b and followed by c
//      call((this(x)))          an x node somewhere below a call node
//      this(x)(arg)             an x node with a direct arg child
//
// Node names are identifiers and token values are quoted strings.
package pattern

import (
	"text/scanner"

	"github.com/alecthomas/packrat"
)

// Grammar of structural search patterns.
type Grammar struct {
	*packrat.Grammar

	Pattern               *packrat.Rule
	ThisMatcher           *packrat.Rule
	ParentMatcher         *packrat.Rule
	DirectParentMatcher   *packrat.Rule
	IndirectParentMatcher *packrat.Rule
	ChildMatcher          *packrat.Rule
	DirectChildMatcher    *packrat.Rule
	IndirectChildMatcher  *packrat.Rule
	SequenceMatcher       *packrat.Rule
	BeforeMatcher         *packrat.Rule
	AfterMatcher          *packrat.Rule
	TokenValue            *packrat.Rule
	NodeName              *packrat.Rule
	NodeNameOrTokenValue  *packrat.Rule
	RuleName              *packrat.Rule
}

// New creates the pattern grammar.
//
// Decoration rewrites a grammar in place, so each Parser needs its own Grammar.
func New() *Grammar {
	g := &Grammar{Grammar: packrat.NewGrammar()}
	r := g.Grammar.Rule
	g.Pattern = r("pattern")
	g.ParentMatcher = r("parentMatcher")
	g.DirectParentMatcher = r("directParentMatcher")
	g.IndirectParentMatcher = r("indirectParentMatcher")
	g.SequenceMatcher = r("sequenceMatcher")
	g.BeforeMatcher = r("beforeMatcher")
	g.AfterMatcher = r("afterMatcher")
	g.ThisMatcher = r("thisMatcher")
	g.ChildMatcher = r("childMatcher")
	g.DirectChildMatcher = r("directChildMatcher")
	g.IndirectChildMatcher = r("indirectChildMatcher")
	g.NodeNameOrTokenValue = r("nodeNameOrTokenValue")
	g.TokenValue = r("tokenValue")
	g.NodeName = r("nodeName")
	g.RuleName = r("ruleName")

	g.Pattern.IsOr(g.SequenceMatcher, g.ParentMatcher)
	g.ParentMatcher.IsOr(g.DirectParentMatcher, g.IndirectParentMatcher)
	g.DirectParentMatcher.Is(g.RuleName, "(", packrat.FirstOf(g.SequenceMatcher, g.ParentMatcher), ")")
	g.IndirectParentMatcher.Is(g.RuleName, "(", "(", packrat.FirstOf(g.SequenceMatcher, g.ParentMatcher), ")", ")")

	g.SequenceMatcher.Is(packrat.Optional(g.BeforeMatcher), g.ThisMatcher, packrat.Optional(g.AfterMatcher))
	g.BeforeMatcher.Is(packrat.Not("this"), g.NodeNameOrTokenValue, packrat.Optional(g.BeforeMatcher))
	g.AfterMatcher.Is(g.NodeNameOrTokenValue, packrat.Optional(g.AfterMatcher))

	g.ThisMatcher.Is("this", "(",
		packrat.FirstOf("*", packrat.OneOrMore(g.NodeNameOrTokenValue, packrat.Optional(","))),
		")",
		packrat.Optional("(", g.ChildMatcher, ")"))

	g.ChildMatcher.IsOr(g.DirectChildMatcher, g.IndirectChildMatcher)
	g.DirectChildMatcher.Is(g.RuleName, packrat.Optional("(", g.ChildMatcher, ")"))
	g.IndirectChildMatcher.Is("(", g.RuleName, packrat.Optional("(", g.ChildMatcher, ")"), ")")

	g.NodeNameOrTokenValue.IsOr(g.NodeName, g.TokenValue).Skip()
	g.TokenValue.Is(scanner.String)
	g.NodeName.Is(scanner.Ident)
	g.RuleName.Is(scanner.Ident)
	return g
}
