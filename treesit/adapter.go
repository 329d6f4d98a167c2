package treesit

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lexcodex/astare/astview"
)

// childrenField collects named children the grammar gives no field
// name; it always sorts after the named fields.
const childrenField = "children"

// node adapts one tree-sitter node. It is a small value: copies share
// the underlying parse tree and source buffer.
type node struct {
	ts  *sitter.Node
	src []byte
}

func (n node) Kind() string { return n.ts.Type() }

func (n node) Span() (astview.Span, bool) {
	start, end := n.ts.StartPoint(), n.ts.EndPoint()
	return astview.Span{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column),
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column),
	}, true
}

func (n node) DefName() (string, bool) {
	name := n.ts.ChildByFieldName("name")
	if name == nil {
		return "", false
	}
	return name.Content(n.src), true
}

// Fields groups named children by grammar field name, in first-
// occurrence order, with fieldless children collected into a trailing
// "children" sequence. A repeated field name becomes a sequence. Leaf
// nodes surface their source text as a single "text" scalar field so
// identifiers and literals stay drillable.
func (n node) Fields() []astview.Field {
	if n.ts.NamedChildCount() == 0 {
		text := n.ts.Content(n.src)
		if text == "" {
			return nil
		}
		return []astview.Field{
			{Name: "text", Value: astview.ScalarValue{Text: text}},
		}
	}

	var order []string
	groups := make(map[string][]astview.Value)
	for i := 0; i < int(n.ts.ChildCount()); i++ {
		child := n.ts.Child(i)
		if !child.IsNamed() {
			// Anonymous tokens are punctuation and keywords; the
			// source pane shows those already.
			continue
		}
		name := n.ts.FieldNameForChild(i)
		if name == "" {
			name = childrenField
		}
		if _, seen := groups[name]; !seen && name != childrenField {
			order = append(order, name)
		}
		groups[name] = append(groups[name], astview.NodeValue{Node: node{ts: child, src: n.src}})
	}
	if _, ok := groups[childrenField]; ok {
		order = append(order, childrenField)
	}

	fields := make([]astview.Field, 0, len(order))
	for _, name := range order {
		values := groups[name]
		if len(values) == 1 && name != childrenField {
			fields = append(fields, astview.Field{Name: name, Value: values[0]})
			continue
		}
		fields = append(fields, astview.Field{Name: name, Value: astview.SeqValue{Items: values}})
	}
	return fields
}
