package tui

import (
	"strings"

	"github.com/lexcodex/astare/astview"
)

// TreeView renders the display tree with a movable cursor. Collapsed
// branches are simply absent from the flattened row list, so cursor
// movement and scrolling never have to know about nesting.
type TreeView struct {
	root     *astview.Node
	expanded map[*astview.Node]bool

	rows   []row
	cursor int
	offset int

	width  int
	height int
}

type row struct {
	node  *astview.Node
	depth int
}

func NewTreeView() *TreeView {
	return &TreeView{expanded: make(map[*astview.Node]bool)}
}

// SetRoot installs a fresh tree and opens the first few levels so the
// initial screen shows structure instead of a lone collapsed root.
func (t *TreeView) SetRoot(root *astview.Node) {
	t.root = root
	t.expanded = make(map[*astview.Node]bool)
	t.cursor = 0
	t.offset = 0
	if root == nil {
		t.rows = nil
		return
	}
	t.expanded[root] = true
	if len(root.Children) > 0 {
		first := root.Children[0]
		t.expanded[first] = true
		if len(first.Children) > 0 {
			t.expanded[first.Children[0]] = true
		}
	}
	t.rebuild()
}

// Selected returns the node under the cursor, nil for an empty tree.
func (t *TreeView) Selected() *astview.Node {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	return t.rows[t.cursor].node
}

// Move shifts the cursor by delta rows, clamped to the tree. It
// reports whether the cursor actually landed somewhere new.
func (t *TreeView) Move(delta int) bool {
	if len(t.rows) == 0 {
		return false
	}
	next := t.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(t.rows) {
		next = len(t.rows) - 1
	}
	if next == t.cursor {
		return false
	}
	t.cursor = next
	t.scrollToCursor()
	return true
}

// Toggle flips the expansion of the node under the cursor.
func (t *TreeView) Toggle() {
	n := t.Selected()
	if n == nil || !n.Expandable || len(n.Children) == 0 {
		return
	}
	t.expanded[n] = !t.expanded[n]
	t.rebuild()
	t.scrollToCursor()
}

// Expand opens the node under the cursor.
func (t *TreeView) Expand() {
	n := t.Selected()
	if n == nil || !n.Expandable || len(n.Children) == 0 || t.expanded[n] {
		return
	}
	t.expanded[n] = true
	t.rebuild()
	t.scrollToCursor()
}

// Collapse closes the node under the cursor, or jumps to the parent
// when the node is already closed.
func (t *TreeView) Collapse() {
	n := t.Selected()
	if n == nil {
		return
	}
	if t.expanded[n] && len(n.Children) > 0 {
		t.expanded[n] = false
		t.rebuild()
		t.scrollToCursor()
		return
	}
	if n.Parent == nil {
		return
	}
	for i, r := range t.rows {
		if r.node == n.Parent {
			t.cursor = i
			t.scrollToCursor()
			return
		}
	}
}

// Len reports the number of visible rows.
func (t *TreeView) Len() int { return len(t.rows) }

func (t *TreeView) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.scrollToCursor()
}

func (t *TreeView) rebuild() {
	t.rows = t.rows[:0]
	if t.root != nil {
		t.appendRows(t.root, 0)
	}
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *TreeView) appendRows(n *astview.Node, depth int) {
	t.rows = append(t.rows, row{node: n, depth: depth})
	if !t.expanded[n] {
		return
	}
	for _, child := range n.Children {
		t.appendRows(child, depth+1)
	}
}

func (t *TreeView) scrollToCursor() {
	if t.height <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.height {
		t.offset = t.cursor - t.height + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// View renders the visible rows.
func (t *TreeView) View() string {
	if len(t.rows) == 0 {
		return dimStyle.Render("no file loaded")
	}
	var b strings.Builder
	end := t.offset + t.height
	if t.height <= 0 || end > len(t.rows) {
		end = len(t.rows)
	}
	for i := t.offset; i < end; i++ {
		if i > t.offset {
			b.WriteByte('\n')
		}
		b.WriteString(t.renderRow(t.rows[i], i == t.cursor))
	}
	return b.String()
}

func (t *TreeView) renderRow(r row, selected bool) string {
	indicator := "  "
	if r.node.Expandable && len(r.node.Children) > 0 {
		if t.expanded[r.node] {
			indicator = "▾ "
		} else {
			indicator = "▸ "
		}
	}
	label := r.node.Label
	switch r.node.Payload {
	case astview.PayloadField:
		label = fieldStyle.Render(label)
	case astview.PayloadScalar:
		label = scalarStyle.Render(label)
	}
	if r.node.Detail != "" {
		label += detailStyle.Render(" (" + r.node.Detail + ")")
	}
	line := strings.Repeat("  ", r.depth) + indicator + label
	if selected {
		return cursorStyle.Render(line)
	}
	return line
}
