package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lexcodex/astare/astview"
)

// StatusBar shows the loaded file, its language, display toggles, and
// the source extent of the selection.
type StatusBar struct {
	path     string
	language string
	parseOK  bool
	rainbow  bool
	dark     bool
	location string
}

func (s *StatusBar) SetDocument(path, language string, parseOK bool) {
	s.path = path
	s.language = language
	s.parseOK = parseOK
	s.location = ""
}

func (s *StatusBar) SetLocation(sp astview.Span, ok bool) {
	if !ok {
		s.location = ""
		return
	}
	s.location = sp.String()
}

func (s StatusBar) View(width int) string {
	language := s.language
	if language == "" {
		language = "plain"
	}
	left := truncate(s.path, 40) + " | " + language
	if s.path != "" && !s.parseOK {
		left += " (no syntax tree)"
	}

	var flags []string
	if s.rainbow {
		flags = append(flags, "rainbow")
	}
	if s.dark {
		flags = append(flags, "dark")
	} else {
		flags = append(flags, "light")
	}
	right := strings.Join(flags, " ")
	if s.location != "" {
		right = s.location + " | " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return statusStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// renderBreadcrumb joins the selection path root-first.
func renderBreadcrumb(n *astview.Node, width int) string {
	if n == nil {
		return breadcrumbStyle.Render("")
	}
	labels := astview.Breadcrumb(n)
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return breadcrumbStyle.MaxWidth(width).Render(strings.Join(labels, " > "))
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:1]
	}
	return "…" + s[len(s)-n+1:]
}
