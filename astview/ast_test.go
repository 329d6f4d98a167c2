package astview

// fakeAst is a hand-built syntax node for exercising the engine
// without a real parser behind it.
type fakeAst struct {
	kind   string
	name   string
	span   *Span
	fields []Field
}

func (f *fakeAst) Kind() string { return f.kind }

func (f *fakeAst) Fields() []Field { return f.fields }

func (f *fakeAst) Span() (Span, bool) {
	if f.span == nil {
		return Span{}, false
	}
	return *f.span, true
}

func (f *fakeAst) DefName() (string, bool) {
	return f.name, f.name != ""
}

func spanOf(startLine, startCol, endLine, endCol int) *Span {
	return &Span{StartLine: startLine, StartCol: startCol, EndLine: endLine, EndCol: endCol}
}

// funcDefFixture mirrors the canonical example: a FunctionDef named
// "f" spanning lines 1-3 whose body holds two statements that carry
// no span of their own.
func funcDefFixture() *fakeAst {
	stmt1 := &fakeAst{kind: "Stmt"}
	stmt2 := &fakeAst{kind: "Stmt"}
	return &fakeAst{
		kind: "FunctionDef",
		name: "f",
		span: spanOf(1, 0, 3, 4),
		fields: []Field{
			{Name: "body", Value: SeqValue{Items: []Value{
				NodeValue{Node: stmt1},
				NodeValue{Node: stmt2},
			}}},
		},
	}
}
