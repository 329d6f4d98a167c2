package astview

// MaxAncestor is how many enclosing ancestors rainbow highlighting
// can paint; the palettes carry exactly this many numbered styles, so
// deeper nesting is left unhighlighted.
const MaxAncestor = 5

// Style names one entry of a highlight palette. Slot 0 is the primary
// style for the current node; slots 1..MaxAncestor are the numbered
// ancestor styles. Dark selects between the two parallel palettes.
type Style struct {
	Slot int
	Dark bool
}

// Instruction tells the renderer to paint one span with one style.
type Instruction struct {
	Style Style
	Span  Span
}

// Scroll asks the renderer to bring a region into view: the 1-based
// first line of the primary span and enough height to cover it.
type Scroll struct {
	Line   int
	Height int
}

// Highlight is a full respecification of the source highlighting.
// Instructions apply in order, later entries painting on top of
// earlier ones; anything previously applied is cleared first. Scroll
// is nil when the node has no resolvable span.
type Highlight struct {
	Instructions []Instruction
	Scroll       *Scroll
}

// Compose builds the highlight for a display node. Without rainbow it
// is at most the single primary instruction. With rainbow the node's
// own span is skipped and up to MaxAncestor further ancestor spans
// are emitted farthest-first, numbered 1..MaxAncestor nearest-first,
// so nearer ancestors paint on top of farther ones; the primary
// instruction always comes last and therefore topmost.
func Compose(n *Node, rainbow, dark bool) Highlight {
	var h Highlight
	if rainbow {
		ancestors := make([]Span, 0, MaxAncestor)
		skip := true
		for sp := range AncestorSpans(n) {
			if skip {
				skip = false
				continue
			}
			ancestors = append(ancestors, sp)
			if len(ancestors) == MaxAncestor {
				break
			}
		}
		for i := len(ancestors) - 1; i >= 0; i-- {
			h.Instructions = append(h.Instructions, Instruction{
				Style: Style{Slot: i + 1, Dark: dark},
				Span:  ancestors[i],
			})
		}
	}
	if sp, ok := Resolve(n); ok {
		h.Instructions = append(h.Instructions, Instruction{
			Style: Style{Slot: 0, Dark: dark},
			Span:  sp,
		})
		h.Scroll = &Scroll{Line: sp.StartLine, Height: sp.Height()}
	}
	return h
}
