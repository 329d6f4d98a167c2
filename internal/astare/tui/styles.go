package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lexcodex/astare/astview"
)

// Highlight palettes, slot 0 is the selected node and slots 1..5 walk
// outward through its enclosing nodes.
var (
	darkHighlights = [astview.MaxAncestor + 1]lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("#770000")).Bold(true).Italic(true),
		lipgloss.NewStyle().Background(lipgloss.Color("#660066")),
		lipgloss.NewStyle().Background(lipgloss.Color("#005555")),
		lipgloss.NewStyle().Background(lipgloss.Color("#444400")),
		lipgloss.NewStyle().Background(lipgloss.Color("#330033")),
		lipgloss.NewStyle().Background(lipgloss.Color("#333333")),
	}

	lightHighlights = [astview.MaxAncestor + 1]lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("#FF0000")).Bold(true).Italic(true),
		lipgloss.NewStyle().Background(lipgloss.Color("#EE00EE")),
		lipgloss.NewStyle().Background(lipgloss.Color("#00DDDD")),
		lipgloss.NewStyle().Background(lipgloss.Color("#CCCC00")),
		lipgloss.NewStyle().Background(lipgloss.Color("#BB00BB")),
		lipgloss.NewStyle().Background(lipgloss.Color("#AAAAAA")),
	}
)

// styleFor maps a highlight style descriptor to its lipgloss style.
func styleFor(st astview.Style) lipgloss.Style {
	slot := st.Slot
	if slot < 0 || slot > astview.MaxAncestor {
		slot = astview.MaxAncestor
	}
	if st.Dark {
		return darkHighlights[slot]
	}
	return lightHighlights[slot]
}

var (
	colorDim = lipgloss.Color("241")

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
