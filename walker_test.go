package packrat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/lexer"
)

// Records every callback, optionally failing on leave or panicking on enter.
type recorder struct {
	name    string
	types   []*packrat.NodeType
	log     *[]string
	failOn  *packrat.NodeType
	fail    error
	panicOn *packrat.NodeType
}

func (r *recorder) add(s string) { *r.log = append(*r.log, r.name+" "+s) }

func (r *recorder) NodeTypes() []*packrat.NodeType { return r.types }

func (r *recorder) VisitNode(node *packrat.Node) error {
	if node.Scope() == nil {
		return errors.New("scope is not open")
	}
	if node.Type == r.panicOn {
		panic("boom")
	}
	r.add("enter " + node.Type.Name())
	return nil
}

func (r *recorder) LeaveNode(node *packrat.Node) error {
	r.add("leave " + node.Type.Name())
	if node.Type == r.failOn {
		return r.fail
	}
	return nil
}

func (r *recorder) VisitToken(token *lexer.Token) error {
	r.add("token " + token.Value)
	return nil
}

func (r *recorder) VisitFile(*packrat.Node) error       { r.add("visitFile"); return nil }
func (r *recorder) BeforeLeaveFile(*packrat.Node) error { r.add("beforeLeaveFile"); return nil }
func (r *recorder) LeaveFile(*packrat.Node) error       { r.add("leaveFile"); return nil }

var (
	_ packrat.TokenVisitor = &recorder{}
	_ packrat.FileVisitor  = &recorder{}
)

// Records scope notifications of the node types it is plugged into.
type scopeListener struct {
	log []string
}

func (s *scopeListener) StartListening(node *packrat.Node, output interface{}) {
	s.log = append(s.log, "start "+node.Type.Name()+" "+output.(string))
}

func (s *scopeListener) StopListening(node *packrat.Node, output interface{}) {
	s.log = append(s.log, "stop "+node.Type.Name()+" "+output.(string))
}

// A(B(C D) E)
func tree() (*packrat.Node, []*packrat.NodeType) {
	a, b, c, d, e := packrat.NewNodeType("A"), packrat.NewNodeType("B"), packrat.NewNodeType("C"),
		packrat.NewNodeType("D"), packrat.NewNodeType("E")
	root := &packrat.Node{Type: a, Children: []*packrat.Node{
		{Type: b, Children: []*packrat.Node{{Type: c}, {Type: d}}},
		{Type: e},
	}}
	return root, []*packrat.NodeType{a, b, c, d, e}
}

func TestWalkOrder(t *testing.T) {
	root, types := tree()
	log := []string{}
	err := packrat.NewWalker(&recorder{name: "v", types: types, log: &log}).Walk(root)
	require.NoError(t, err)
	require.Equal(t, []string{
		"v visitFile",
		"v enter A", "v enter B", "v enter C", "v leave C", "v enter D", "v leave D", "v leave B",
		"v enter E", "v leave E", "v leave A",
		"v beforeLeaveFile", "v leaveFile",
	}, log)
}

func TestWalkVisitorOrder(t *testing.T) {
	root, types := tree()
	log := []string{}
	walker := packrat.NewWalker(&recorder{name: "v1", types: types[:1], log: &log})
	walker.AddVisitor(&recorder{name: "v2", types: types[:1], log: &log})
	require.NoError(t, walker.Walk(root))
	require.Equal(t, []string{
		"v1 visitFile", "v2 visitFile",
		"v1 enter A", "v2 enter A", "v2 leave A", "v1 leave A",
		"v2 beforeLeaveFile", "v1 beforeLeaveFile",
		"v2 leaveFile", "v1 leaveFile",
	}, log)
}

func TestWalkDispatchesByTypeIdentity(t *testing.T) {
	first, second := packrat.NewNodeType("X"), packrat.NewNodeType("X")
	root := &packrat.Node{Type: first, Children: []*packrat.Node{{Type: second}}}
	log := []string{}
	require.NoError(t, packrat.NewWalker(&recorder{name: "v", types: []*packrat.NodeType{first}, log: &log}).Walk(root))
	require.Equal(t, []string{"v visitFile", "v enter X", "v leave X", "v beforeLeaveFile", "v leaveFile"}, log)
}

func TestWalkVisitsEachTokenOnce(t *testing.T) {
	parser := packrat.MustBuild(listGrammar())
	ast, err := parser.ParseString("", "a , ( b )")
	require.NoError(t, err)
	log := []string{}
	walker := packrat.NewWalker(&recorder{name: "v", log: &log})
	require.NoError(t, walker.Walk(ast))
	require.Equal(t, []string{
		"v visitFile",
		"v token a", "v token ,", "v token (", "v token b", "v token )",
		"v beforeLeaveFile", "v leaveFile",
	}, log)

	// Token deduplication does not carry over between walks.
	log = log[:0]
	require.NoError(t, walker.Walk(ast.Children[0]))
	require.Equal(t, []string{"v visitFile", "v token a", "v beforeLeaveFile", "v leaveFile"}, log)
}

func TestWalkVisitsTokenSharedBySiblingsOnce(t *testing.T) {
	parent, sibling := packrat.NewNodeType("P"), packrat.NewNodeType("S")
	shared := &lexer.Token{Type: -2, Value: "x"}
	other := &lexer.Token{Type: -2, Value: "y"}
	root := &packrat.Node{Type: parent, Children: []*packrat.Node{
		{Type: sibling, Token: shared},
		{Type: sibling, Token: shared},
		{Type: sibling, Token: other},
	}}
	log := []string{}
	require.NoError(t, packrat.NewWalker(&recorder{name: "v", log: &log}).Walk(root))
	require.Equal(t, []string{"v visitFile", "v token x", "v token y", "v beforeLeaveFile", "v leaveFile"}, log)
}

func TestWalkErrorClosesScopes(t *testing.T) {
	listener := &scopeListener{}
	outer := packrat.NewRule("outer").Plug(listener)
	inner := packrat.NewRule("inner").Plug(listener)
	child := &packrat.Node{Type: inner.Type()}
	root := &packrat.Node{Type: outer.Type(), Children: []*packrat.Node{child}}

	boom := errors.New("boom")
	log := []string{}
	visitor := &recorder{
		name:   "v",
		types:  []*packrat.NodeType{outer.Type(), inner.Type()},
		log:    &log,
		failOn: inner.Type(),
		fail:   boom,
	}
	err := packrat.NewWalker(visitor).WalkAndListen(root, "out")
	require.Equal(t, boom, err)
	require.Equal(t, []string{"v visitFile", "v enter outer", "v enter inner", "v leave inner"}, log)
	require.Equal(t, []string{"start outer out", "start inner out", "stop inner out", "stop outer out"}, listener.log)
	require.Nil(t, root.Scope())
	require.Nil(t, child.Scope())
}

func TestWalkPanicClosesScopes(t *testing.T) {
	listener := &scopeListener{}
	outer := packrat.NewRule("outer").Plug(listener)
	inner := packrat.NewRule("inner").Plug(listener)
	child := &packrat.Node{Type: inner.Type()}
	root := &packrat.Node{Type: outer.Type(), Children: []*packrat.Node{child}}

	log := []string{}
	visitor := &recorder{name: "v", types: []*packrat.NodeType{outer.Type(), inner.Type()}, log: &log, panicOn: inner.Type()}
	require.Panics(t, func() { _ = packrat.NewWalker(visitor).WalkAndListen(root, "out") })
	require.Equal(t, []string{"start outer out", "start inner out", "stop inner out", "stop outer out"}, listener.log)
	require.Nil(t, root.Scope())
	require.Nil(t, child.Scope())
}

type scopeVisitor struct {
	node *packrat.Node
	seen []interface{}
}

func (s *scopeVisitor) NodeTypes() []*packrat.NodeType { return []*packrat.NodeType{s.node.Type} }

func (s *scopeVisitor) VisitNode(node *packrat.Node) error {
	node.Scope().Set("key", "value")
	return nil
}

func (s *scopeVisitor) LeaveNode(node *packrat.Node) error {
	value, _ := node.Scope().Get("key")
	s.seen = append(s.seen, node.Scope().Output, value, node.Scope().Node == node)
	return nil
}

func TestScope(t *testing.T) {
	node := &packrat.Node{Type: packrat.NewNodeType("N")}
	visitor := &scopeVisitor{node: node}
	require.NoError(t, packrat.NewWalker(visitor).WalkAndListen(node, 42))
	require.Equal(t, []interface{}{42, "value", true}, visitor.seen)
	require.Nil(t, node.Scope())
}

func TestNodeHelpers(t *testing.T) {
	parser := packrat.MustBuild(listGrammar())
	ast, err := parser.ParseString("", "a , ( b )")
	require.NoError(t, err)
	list, _ := parser.Grammar().Lookup("list")
	item, _ := parser.Grammar().Lookup("item")
	require.True(t, ast.Is(list.Type()))
	require.Len(t, ast.ChildrenOf(item.Type()), 2)
	require.Equal(t, "a", ast.FirstChild(item.Type()).Value())
	require.Nil(t, ast.FirstChild(list.Type()))
	require.Len(t, ast.Tokens(), 5)
}
