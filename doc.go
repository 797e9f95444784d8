// Package packrat is a PEG matching engine over token streams, with packrat memoization.
//
// A grammar is a graph of matchers. Rules name a body matcher, composite matchers combine
// their children, and leaf matchers match single tokens. Rules may reference each other
// recursively:
//
//     g := packrat.NewGrammar()
//     expr, term := g.Rule("expr"), g.Rule("term")
//     expr.Is(term, packrat.ZeroOrMore(packrat.FirstOf("+", "-"), term))
//     term.IsOr(scanner.Int, packrat.Sequence("(", expr, ")"))
//
// Before first use a grammar is decorated exactly once. Decoration rewrites the graph in
// place, wrapping non-leaf matchers with packrat caches and, if any listeners are configured,
// wrapping every matcher with event adapters:
//
//     parser, err := packrat.New(g, packrat.UseMemoization(), packrat.Trace(os.Stderr))
//     ast, err := parser.ParseString("", "1 + (2 - 3)")
//
// The resulting tree of *Node can then be walked with a Walker, which dispatches to Visitors
// by node type.
package packrat
