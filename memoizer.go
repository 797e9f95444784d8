package packrat

// ParseNode is a packrat cache entry: the result of a successful match.
type ParseNode struct {
	// Matcher that produced the entry.
	Matcher Matcher
	Start   int
	// End index, exclusive.
	End int
	// Nodes appended to the AST while matching.
	Nodes []*Node
}

// A Memoizer caches successful matches by start position.
//
// Entries carry the identity of the matcher that produced them and are only reused by that
// same matcher, so distinct matchers can safely share a Memoizer.
type Memoizer struct {
	memos []*ParseNode
}

// NewMemoizer creates a Memoizer for an input of length tokens, plus an EOF slot.
func NewMemoizer(length int) *Memoizer {
	return &Memoizer{memos: make([]*ParseNode, length+1)}
}

// TryReuse a cached match of matcher at the cursor of ctx.
//
// On a hit the cursor is advanced to the end of the cached match, the cached nodes are
// appended to ctx, and true is returned.
//
// A zero-width match can be reused next to itself, so its nodes are copied to keep every
// node of a tree distinct.
func (m *Memoizer) TryReuse(ctx *Context, matcher Matcher) bool {
	memo := m.memos[ctx.cursor]
	if memo == nil || memo.Matcher != matcher {
		return false
	}
	ctx.cursor = memo.End
	if memo.End == memo.Start {
		for _, node := range memo.Nodes {
			ctx.nodes = append(ctx.nodes, node.clone())
		}
	} else {
		ctx.nodes = append(ctx.nodes, memo.Nodes...)
	}
	return true
}

// Record a successful match.
func (m *Memoizer) Record(node *ParseNode) {
	m.memos[node.Start] = node
}

// Wraps a matcher with a per-parse Memoizer.
type memoizerMatcher struct {
	children []Matcher
}

// Memoize wraps matcher with a packrat cache. Caches are allocated per parse and shared by
// every memoizer of the same matcher.
func Memoize(matcher Matcher) Matcher {
	return &memoizerMatcher{children: []Matcher{matcher}}
}

func (m *memoizerMatcher) Children() []Matcher { return m.children }
func (m *memoizerMatcher) Kind() Kind          { return KindMemoizer }
func (m *memoizerMatcher) String() string      { return m.children[0].String() }

func (m *memoizerMatcher) Match(ctx *Context) bool {
	matcher := m.children[0]
	memo := ctx.memo(matcher)
	if memo.TryReuse(ctx, matcher) {
		ctx.run.hits++
		return true
	}
	ctx.run.misses++
	start := ctx.mark()
	if !matcher.Match(ctx) {
		return false
	}
	memo.Record(&ParseNode{
		Matcher: matcher,
		Start:   start.cursor,
		End:     ctx.cursor,
		Nodes:   append([]*Node(nil), ctx.nodes[start.nodes:]...),
	})
	return true
}
