package tui

import (
	"fmt"
	"strings"

	"github.com/lexcodex/astare/astview"
)

// SourceView renders the file text with the current highlight painted
// over it.
type SourceView struct {
	lines []string
	hl    astview.Highlight

	offset int
	width  int
	height int
}

func NewSourceView() *SourceView {
	return &SourceView{}
}

// SetLines installs the file content and clears any highlight.
func (s *SourceView) SetLines(lines []string) {
	s.lines = lines
	s.hl = astview.Highlight{}
	s.offset = 0
}

// SetHighlight replaces the previous highlight entirely and scrolls
// the highlighted region into view.
func (s *SourceView) SetHighlight(hl astview.Highlight) {
	s.hl = hl
	s.applyScroll()
}

func (s *SourceView) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.applyScroll()
}

// applyScroll centers the highlighted region when it fits, otherwise
// pins its first line to the top.
func (s *SourceView) applyScroll() {
	if s.hl.Scroll == nil || s.height <= 0 {
		return
	}
	top := s.hl.Scroll.Line - 1
	slack := s.height - s.hl.Scroll.Height
	if slack > 0 {
		top -= slack / 2
	}
	maxOffset := len(s.lines) - s.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if top > maxOffset {
		top = maxOffset
	}
	if top < 0 {
		top = 0
	}
	s.offset = top
}

// Scroll moves the view by delta lines, for manual navigation.
func (s *SourceView) Scroll(delta int) {
	s.offset += delta
	maxOffset := len(s.lines) - s.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// styleAt returns the winning highlight style at a position. Later
// instructions shadow earlier ones, which keeps the selected node's
// own color on top of its enclosing nodes.
func (s *SourceView) styleAt(line, col int) (astview.Style, bool) {
	for i := len(s.hl.Instructions) - 1; i >= 0; i-- {
		inst := s.hl.Instructions[i]
		if inst.Span.Contains(line, col) {
			return inst.Style, true
		}
	}
	return astview.Style{}, false
}

// View renders the visible slice of the file.
func (s *SourceView) View() string {
	if len(s.lines) == 0 {
		return dimStyle.Render("empty file")
	}
	end := s.offset + s.height
	if s.height <= 0 || end > len(s.lines) {
		end = len(s.lines)
	}
	var b strings.Builder
	for i := s.offset; i < end; i++ {
		if i > s.offset {
			b.WriteByte('\n')
		}
		b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%4d ", i+1)))
		b.WriteString(s.renderLine(i+1, s.lines[i]))
	}
	return b.String()
}

// renderLine paints one line rune by rune, grouping consecutive runes
// that share a style into a single render call.
func (s *SourceView) renderLine(lineNo int, text string) string {
	if len(s.hl.Instructions) == 0 {
		return text
	}
	var b strings.Builder
	var segment []rune
	var segStyle astview.Style
	segStyled := false
	started := false

	flush := func() {
		if len(segment) == 0 {
			return
		}
		if segStyled {
			b.WriteString(styleFor(segStyle).Render(string(segment)))
		} else {
			b.WriteString(string(segment))
		}
		segment = segment[:0]
	}

	for col, r := range []rune(text) {
		st, ok := s.styleAt(lineNo, col)
		if !started || ok != segStyled || (ok && st != segStyle) {
			flush()
			segStyle, segStyled, started = st, ok, true
		}
		segment = append(segment, r)
	}
	flush()
	return b.String()
}
