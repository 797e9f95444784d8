package packrat_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/packrat"
)

func TestEBNF(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "arithmetic-ebnf", []byte(arithmeticGrammar().String()))
}

func TestDump(t *testing.T) {
	grammar := listGrammar()
	require.NoError(t, packrat.Decorate(grammar, true, packrat.NopListener{}))
	g := goldie.New(t)
	g.Assert(t, "list-dump", []byte(packrat.Dump(grammar.Root())))
}

func TestTrace(t *testing.T) {
	w := &bytes.Buffer{}
	parser := packrat.MustBuild(listGrammar(), packrat.Trace(w))
	_, err := parser.ParseString("", "a , ( b )")
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "list-trace", w.Bytes())
}

func TestTraceFailure(t *testing.T) {
	w := &bytes.Buffer{}
	parser := packrat.MustBuild(listGrammar(), packrat.Trace(w))
	_, err := parser.ParseString("", ")")
	require.Error(t, err)
	require.Equal(t, "list \")\"\n  item \")\"\n  item failed\nlist failed\n", w.String())
}

func TestVisitOnce(t *testing.T) {
	grammar := arithmeticGrammar()
	rules := []string{}
	visited := map[packrat.Matcher]int{}
	err := packrat.Visit(grammar.Root(), func(m packrat.Matcher, next func() error) error {
		visited[m]++
		if r, ok := m.(*packrat.Rule); ok {
			rules = append(rules, r.Name())
		}
		return next()
	})
	require.NoError(t, err)
	require.Equal(t, []string{"expr", "term", "factor"}, rules)
	for m, count := range visited {
		require.Equal(t, 1, count, m.String())
	}
}

func TestStatistics(t *testing.T) {
	stats := packrat.NewStatistics()
	parser := packrat.MustBuild(listGrammar(), packrat.UseMemoization(), packrat.Listen(stats))
	_, err := parser.ParseString("", "a , ( b )")
	require.NoError(t, err)

	sorted := stats.Sorted()
	require.Len(t, sorted, 2)
	require.Equal(t, "item", sorted[0].Name)
	require.Equal(t, 3, sorted[0].Invocations)
	require.Equal(t, 3, sorted[0].Matches)
	require.Equal(t, "list", sorted[1].Name)
	require.Equal(t, 2, sorted[1].Invocations)
	require.Equal(t, 2, sorted[1].Matches)
	require.NotZero(t, stats.Matchers)
	require.Contains(t, stats.String(), "RULE  INVOCATIONS  MATCHES  TIME\n")
}

func TestStatisticsKeyedByRule(t *testing.T) {
	g := packrat.NewGrammar()
	first, second := packrat.NewRule("dup").Is("a"), packrat.NewRule("dup").Is("b")
	g.Rule("root").Is(first, packrat.Optional(second))
	stats := packrat.NewStatistics()
	_, err := packrat.MustBuild(g, packrat.Listen(stats)).ParseString("", "a")
	require.NoError(t, err)

	require.Len(t, stats.Rules, 3)
	require.Equal(t, &packrat.RuleStatistics{Name: "dup", Invocations: 1, Matches: 1, Duration: stats.Rules[first].Duration},
		stats.Rules[first])
	require.Equal(t, &packrat.RuleStatistics{Name: "dup", Invocations: 1, Matches: 0, Duration: stats.Rules[second].Duration},
		stats.Rules[second])
}
