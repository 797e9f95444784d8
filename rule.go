package packrat

// Rule is a named grammar rule.
//
// A rule owns exactly one body matcher and produces one AST node of its own type per match,
// unless it is skipped.
type Rule struct {
	name     string
	typ      *NodeType
	children []Matcher
	skip     skipMode
}

type skipMode int

const (
	skipNever skipMode = iota
	skipAlways
	skipIfOneChild
)

// NewRule creates a rule with no body. Use Is or IsOr to define it.
func NewRule(name string) *Rule {
	return &Rule{name: name, typ: NewNodeType(name), children: make([]Matcher, 1)}
}

// Name of the rule.
func (r *Rule) Name() string { return r.name }

// Type of the AST nodes produced by the rule.
func (r *Rule) Type() *NodeType { return r.typ }

// Defined returns true once the rule has a body.
func (r *Rule) Defined() bool { return r.children[0] != nil }

// Is defines the body of the rule as the sequence of exprs.
//
// Each expression may be a Matcher, a string (matching a token value) or a rune (matching a
// token type).
func (r *Rule) Is(exprs ...interface{}) *Rule {
	if len(exprs) == 1 {
		r.children[0] = toMatcher(exprs[0])
	} else {
		r.children[0] = Sequence(exprs...)
	}
	return r
}

// IsOr defines the body of the rule as the first matching of exprs.
func (r *Rule) IsOr(exprs ...interface{}) *Rule {
	if len(exprs) == 1 {
		r.children[0] = toMatcher(exprs[0])
	} else {
		r.children[0] = FirstOf(exprs...)
	}
	return r
}

// Skip the rule's own node, attaching its children to the parent node instead.
func (r *Rule) Skip() *Rule {
	r.skip = skipAlways
	return r
}

// SkipIfOneChild skips the rule's own node when it would have exactly one child.
func (r *Rule) SkipIfOneChild() *Rule {
	r.skip = skipIfOneChild
	return r
}

// Plug a NodeListener into the rule's node type.
func (r *Rule) Plug(listener NodeListener) *Rule {
	r.typ.listener = listener
	return r
}

func (r *Rule) Children() []Matcher { return r.children }
func (r *Rule) Kind() Kind          { return KindRule }
func (r *Rule) String() string      { return r.name }

func (r *Rule) Match(ctx *Context) bool {
	m := ctx.mark()
	if !r.children[0].Match(ctx) {
		ctx.reset(m)
		return false
	}
	produced := ctx.nodes[m.nodes:]
	if r.skip == skipAlways || (r.skip == skipIfOneChild && len(produced) == 1) {
		return true
	}
	node := &Node{
		Type:     r.typ,
		Children: append([]*Node(nil), produced...),
		Start:    m.cursor,
		End:      ctx.cursor,
	}
	if ctx.cursor > m.cursor {
		node.Token = ctx.input.Token(m.cursor)
	}
	ctx.reset(mark{cursor: ctx.cursor, nodes: m.nodes})
	ctx.nodes = append(ctx.nodes, node)
	return true
}
