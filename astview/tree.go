package astview

// Payload identifies what a display node stands for.
type Payload int

const (
	// PayloadFile marks the root node representing the explored file.
	PayloadFile Payload = iota
	// PayloadAst marks a node backed by a syntax-tree node.
	PayloadAst
	// PayloadField marks a synthetic field-label node interposed
	// between an Ast node and its field's subtree.
	PayloadField
	// PayloadScalar marks a scalar leaf.
	PayloadScalar
)

// Node is one element of the projected display tree. Children are
// owned by their parent; Parent is a plain back-pointer used only for
// root-ward walks. A Node is valid exactly as long as the Ast it was
// projected from; reloading a file replaces the whole tree.
type Node struct {
	// Label is the node's display text: kind name, field name, scalar
	// rendering, or the file name at the root.
	Label string
	// Detail is the definition-name annotation for nameable kinds,
	// rendered in a dimmer sub-style after the label.
	Detail string
	// Payload says which of the union members below is meaningful.
	Payload Payload
	// Ast is set when Payload is PayloadAst.
	Ast Ast
	// Expandable is false for leaves with nothing to drill into.
	Expandable bool

	Parent   *Node
	Children []*Node
}

// Text is the label with the definition-name annotation appended,
// matching what the tree pane and breadcrumbs show.
func (n *Node) Text() string {
	if n.Detail != "" {
		return n.Label + " (" + n.Detail + ")"
	}
	return n.Label
}

func (n *Node) add(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Breadcrumb collects the label text of the node and each of its
// ancestors, ordered from the node up to the root.
func Breadcrumb(n *Node) []string {
	var out []string
	for cur := n; cur != nil; cur = cur.Parent {
		out = append(out, cur.Text())
	}
	return out
}
