package astview

import "path/filepath"

// Projector builds display trees from parsed syntax trees. The zero
// value projects without definition-name annotations.
type Projector struct {
	// NameDefs appends the defined name to the label of
	// definition-like nodes, e.g. "FunctionDef (main)".
	NameDefs bool
}

// Project walks the syntax tree rooted at root and returns a fresh
// display tree mirroring it. The root display node represents the
// file itself; when root is nil (the file did not parse) the result
// is that single node alone, so there is always something to show.
func (p Projector) Project(file string, root Ast) *Node {
	top := &Node{
		Label:      filepath.Base(file),
		Payload:    PayloadFile,
		Expandable: true,
	}
	if root == nil {
		top.Expandable = false
		return top
	}
	p.addValue(NodeValue{Node: root}, top)
	return top
}

func (p Projector) addValue(v Value, to *Node) {
	switch v := v.(type) {
	case NodeValue:
		p.addAst(v.Node, to)
	case SeqValue:
		// Sequences flatten: every element attaches directly to the
		// current parent, which is why field-label nodes exist.
		for _, item := range v.Items {
			p.addValue(item, to)
		}
	case ScalarValue:
		to.add(&Node{Label: v.Text, Payload: PayloadScalar})
	}
}

func (p Projector) addAst(item Ast, to *Node) {
	node := &Node{
		Label:      item.Kind(),
		Payload:    PayloadAst,
		Ast:        item,
		Expandable: true,
	}
	if p.NameDefs {
		if name, ok := item.DefName(); ok {
			node.Detail = name
		}
	}
	to.add(node)

	fields := item.Fields()
	if len(fields) == 0 {
		// Nothing to drill into.
		node.Expandable = false
		return
	}
	for _, field := range fields {
		if seq, ok := field.Value.(SeqValue); ok && len(seq.Items) == 0 {
			// Empty sequences are suppressed entirely, not shown as
			// a label with no children.
			continue
		}
		label := node.add(&Node{
			Label:      field.Name,
			Payload:    PayloadField,
			Expandable: true,
		})
		p.addValue(field.Value, label)
	}
}
