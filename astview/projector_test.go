package astview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFieldLabelsInDeclarationOrder(t *testing.T) {
	ast := &fakeAst{
		kind: "BinOp",
		span: spanOf(1, 0, 1, 5),
		fields: []Field{
			{Name: "left", Value: NodeValue{Node: &fakeAst{kind: "Name"}}},
			{Name: "op", Value: NodeValue{Node: &fakeAst{kind: "Add"}}},
			{Name: "right", Value: NodeValue{Node: &fakeAst{kind: "Constant"}}},
		},
	}

	root := Projector{}.Project("expr.py", ast)
	require.Len(t, root.Children, 1)

	binop := root.Children[0]
	require.Len(t, binop.Children, 3)
	for i, want := range []string{"left", "op", "right"} {
		child := binop.Children[i]
		assert.Equal(t, want, child.Label)
		assert.Equal(t, PayloadField, child.Payload)
		assert.Same(t, binop, child.Parent)
	}
}

func TestProjectSuppressesEmptySequences(t *testing.T) {
	ast := &fakeAst{
		kind: "FunctionDef",
		fields: []Field{
			{Name: "decorator_list", Value: SeqValue{}},
			{Name: "body", Value: SeqValue{Items: []Value{
				NodeValue{Node: &fakeAst{kind: "Pass"}},
			}}},
		},
	}

	root := Projector{}.Project("f.py", ast)
	fn := root.Children[0]

	// The empty sequence contributes no field label at all, not a
	// label with zero children.
	require.Len(t, fn.Children, 1)
	assert.Equal(t, "body", fn.Children[0].Label)
	assert.True(t, fn.Expandable)
}

func TestProjectZeroFieldNodeIsNotExpandable(t *testing.T) {
	root := Projector{}.Project("op.py", &fakeAst{kind: "Add"})
	add := root.Children[0]
	assert.False(t, add.Expandable)
	assert.Empty(t, add.Children)
}

func TestProjectSequenceFlattensUnderFieldLabel(t *testing.T) {
	ast := &fakeAst{
		kind: "Module",
		fields: []Field{
			{Name: "body", Value: SeqValue{Items: []Value{
				NodeValue{Node: &fakeAst{kind: "Import"}},
				NodeValue{Node: &fakeAst{kind: "Assign"}},
				NodeValue{Node: &fakeAst{kind: "Expr"}},
			}}},
		},
	}

	root := Projector{}.Project("m.py", ast)
	body := root.Children[0].Children[0]
	require.Equal(t, "body", body.Label)

	// No wrapper node for the sequence itself: all three elements
	// hang directly off the field label.
	require.Len(t, body.Children, 3)
	assert.Equal(t, "Import", body.Children[0].Label)
	assert.Equal(t, "Assign", body.Children[1].Label)
	assert.Equal(t, "Expr", body.Children[2].Label)
}

func TestProjectScalarLeaf(t *testing.T) {
	ast := &fakeAst{
		kind: "Constant",
		fields: []Field{
			{Name: "value", Value: ScalarValue{Text: "42"}},
		},
	}

	root := Projector{}.Project("c.py", ast)
	leaf := root.Children[0].Children[0].Children[0]
	assert.Equal(t, "42", leaf.Label)
	assert.Equal(t, PayloadScalar, leaf.Payload)
	assert.False(t, leaf.Expandable)
}

func TestProjectDefNameAnnotation(t *testing.T) {
	named := Projector{NameDefs: true}.Project("f.py", funcDefFixture())
	assert.Equal(t, "FunctionDef (f)", named.Children[0].Text())

	plain := Projector{}.Project("f.py", funcDefFixture())
	assert.Equal(t, "FunctionDef", plain.Children[0].Text())
}

func TestProjectNilAstDegradesToSingleNode(t *testing.T) {
	root := Projector{}.Project("/tmp/broken.py", nil)
	assert.Equal(t, "broken.py", root.Label)
	assert.Equal(t, PayloadFile, root.Payload)
	assert.False(t, root.Expandable)
	assert.Empty(t, root.Children)
	assert.Nil(t, root.Parent)
}

func TestProjectIsIndependentAcrossRuns(t *testing.T) {
	ast := funcDefFixture()
	first := Projector{}.Project("f.py", ast)
	second := Projector{}.Project("f.py", ast)

	require.NotSame(t, first, second)
	require.NotSame(t, first.Children[0], second.Children[0])
	assert.Equal(t, Breadcrumb(first.Children[0]), Breadcrumb(second.Children[0]))
}
