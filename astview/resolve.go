package astview

import "iter"

// Resolve returns the source span a display node corresponds to.
// Field labels, scalar leaves and span-less syntax nodes have no
// extent of their own, so they inherit the span of the nearest
// ancestor that carries one. Returns false only when nothing on the
// path to the root has a span.
func Resolve(n *Node) (Span, bool) {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Payload != PayloadAst {
			continue
		}
		if sp, ok := cur.Ast.Span(); ok {
			return sp, true
		}
	}
	return Span{}, false
}

// AncestorSpans yields the resolved span of n and each of its
// ancestors, ordered node to root, collapsing consecutive equal spans
// into one. Wrapper kinds without their own span resolve to the same
// extent as their parent, so without the collapse rainbow
// highlighting would repaint identical ranges. The sequence is lazy
// and bounded by tree depth; treat it as single-pass.
func AncestorSpans(n *Node) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		var last Span
		have := false
		for cur := n; cur != nil; cur = cur.Parent {
			sp, ok := Resolve(cur)
			if !ok {
				continue
			}
			if have && sp == last {
				continue
			}
			if !yield(sp) {
				return
			}
			last, have = sp, true
		}
	}
}
