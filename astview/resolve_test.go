package astview

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFallsBackToNearestAncestorSpan(t *testing.T) {
	root := Projector{NameDefs: true}.Project("<root>", funcDefFixture())

	fn := root.Children[0]
	body := fn.Children[0]
	stmt1 := body.Children[0]

	want := Span{StartLine: 1, StartCol: 0, EndLine: 3, EndCol: 4}

	// The statement has no span of its own; it, and the field label
	// above it, both inherit the FunctionDef's.
	for _, n := range []*Node{stmt1, body} {
		sp, ok := Resolve(n)
		require.True(t, ok)
		assert.Equal(t, want, sp)
	}

	parentSpan, ok := Resolve(stmt1.Parent)
	require.True(t, ok)
	childSpan, _ := Resolve(stmt1)
	assert.Equal(t, parentSpan, childSpan)
}

func TestResolveRootWithoutSpan(t *testing.T) {
	root := Projector{}.Project("empty.py", nil)
	_, ok := Resolve(root)
	assert.False(t, ok)
}

func TestBreadcrumbNodeToRoot(t *testing.T) {
	root := Projector{NameDefs: true}.Project("<root>", funcDefFixture())
	stmt1 := root.Children[0].Children[0].Children[0]

	assert.Equal(t,
		[]string{"Stmt", "body", "FunctionDef (f)", "<root>"},
		Breadcrumb(stmt1),
	)
}

// naiveAncestorSpans is the non-deduplicating walk; collapsing its
// consecutive duplicates must reproduce AncestorSpans exactly.
func naiveAncestorSpans(n *Node) []Span {
	var out []Span
	for cur := n; cur != nil; cur = cur.Parent {
		if sp, ok := Resolve(cur); ok {
			out = append(out, sp)
		}
	}
	return out
}

func deepFixture() *Node {
	// Wrappers without spans interleaved with spanned nodes, so the
	// raw walk repeats spans that the deduplicated one must collapse.
	inner := &fakeAst{kind: "Name", span: spanOf(2, 4, 2, 7)}
	expr := &fakeAst{
		kind: "Expr",
		fields: []Field{
			{Name: "value", Value: NodeValue{Node: inner}},
		},
	}
	fn := &fakeAst{
		kind: "FunctionDef",
		name: "g",
		span: spanOf(1, 0, 4, 0),
		fields: []Field{
			{Name: "body", Value: SeqValue{Items: []Value{NodeValue{Node: expr}}}},
		},
	}
	module := &fakeAst{
		kind: "Module",
		span: spanOf(1, 0, 4, 0),
		fields: []Field{
			{Name: "body", Value: SeqValue{Items: []Value{NodeValue{Node: fn}}}},
		},
	}
	return Projector{}.Project("deep.py", module)
}

func TestAncestorSpansDeduplicatesConsecutiveEqualSpans(t *testing.T) {
	root := deepFixture()

	// Walk down to the innermost Name node.
	n := root
	for len(n.Children) > 0 {
		n = n.Children[0]
	}

	got := slices.Collect(AncestorSpans(n))
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i], "consecutive spans at %d", i)
	}

	naive := naiveAncestorSpans(n)
	var collapsed []Span
	for _, sp := range naive {
		if len(collapsed) == 0 || collapsed[len(collapsed)-1] != sp {
			collapsed = append(collapsed, sp)
		}
	}
	assert.Equal(t, collapsed, got)

	// FunctionDef and Module share a span, so only two distinct
	// extents remain: the Name's own and the shared outer one.
	require.Len(t, got, 2)
	assert.Equal(t, Span{StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 7}, got[0])
}

func TestAncestorSpansEmptyWhenNothingResolves(t *testing.T) {
	root := Projector{}.Project("none.py", nil)
	assert.Empty(t, slices.Collect(AncestorSpans(root)))
}

func TestAncestorSpansStopsEarlyWhenCallerBreaks(t *testing.T) {
	root := deepFixture()
	n := root
	for len(n.Children) > 0 {
		n = n.Children[0]
	}

	count := 0
	for range AncestorSpans(n) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
