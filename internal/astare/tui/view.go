package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View composes the breadcrumb, the two panes, and the status bar.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.pickerOpen {
		hint := dimStyle.Render("enter to open | esc to cancel | ctrl+c to quit")
		return lipgloss.JoinVertical(lipgloss.Left, m.picker.View(), hint)
	}

	breadcrumb := renderBreadcrumb(m.tree.Selected(), m.width)

	paneHeight := m.height - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	treeWidth := m.treeWidth()

	treePane := paneStyle.
		Width(treeWidth - 2).
		Height(paneHeight - 2).
		Render(m.tree.View())
	sourcePane := paneStyle.
		Width(m.width - treeWidth - 2).
		Height(paneHeight - 2).
		Render(m.source.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, treePane, sourcePane)
	status := m.status.View(m.width)

	return lipgloss.JoinVertical(lipgloss.Left, breadcrumb, panes, status)
}
