package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexcodex/astare/astview"
)

// Update applies incoming Bubble Tea messages to mutate the Model
// state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case docMsg:
		return m.handleDocument(msg)
	case highlightTickMsg:
		if node, ok := m.sched.Fire(msg.seq); ok {
			m.applyHighlight(node)
		}
		return m, nil
	case tea.KeyMsg:
		if m.pickerOpen {
			return m.handlePickerKeys(msg)
		}
		return m.handleKeys(msg)
	}
	if m.pickerOpen {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.layout()
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// layout distributes the window between the tree and source panes,
// reserving a row each for the breadcrumb and the status bar.
func (m *Model) layout() {
	paneHeight := m.height - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	innerHeight := paneHeight - 2

	treeWidth := m.treeWidth()
	m.tree.SetSize(treeWidth-2, innerHeight)
	m.source.SetSize(m.width-treeWidth-2, innerHeight)
	m.picker.Height = paneHeight
}

func (m Model) treeWidth() int {
	w := m.width * m.treeShare / 20
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) handleDocument(msg docMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.runtime.Logger.Printf("open failed: %v", msg.err)
		m.pickerOpen = true
		return m, m.picker.Init()
	}
	m.pickerOpen = false
	m.installDocument(msg.doc)
	return m, nil
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.doc != nil {
			m.pickerOpen = false
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if selected, path := m.picker.DidSelectFile(msg); selected {
		return m, tea.Batch(cmd, loadDocCmd(m.runtime, path))
	}
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		return m.moveCursor(-1)
	case "down", "j":
		return m.moveCursor(1)
	case "pgup":
		return m.moveCursor(-10)
	case "pgdown":
		return m.moveCursor(10)
	case "enter", " ":
		m.tree.Toggle()
		m.applyHighlight(m.sched.Choose(m.tree.Selected()))
		return m, nil
	case "right", "l":
		m.tree.Expand()
		return m, nil
	case "left", "h":
		before := m.tree.Selected()
		m.tree.Collapse()
		if m.tree.Selected() != before {
			return m.scheduleHighlight()
		}
		return m, nil
	case "ctrl+r":
		m.rainbow = !m.rainbow
		m.status.rainbow = m.rainbow
		m.applyHighlight(m.sched.Choose(m.tree.Selected()))
		return m, nil
	case "ctrl+d":
		m.dark = !m.dark
		m.status.dark = m.dark
		m.applyHighlight(m.sched.Choose(m.tree.Selected()))
		return m, nil
	case "ctrl+o":
		m.pickerOpen = true
		return m, m.picker.Init()
	case "ctrl+left":
		if m.treeShare > 2 {
			m.treeShare--
			m.layout()
		}
		return m, nil
	case "ctrl+right":
		if m.treeShare < 18 {
			m.treeShare++
			m.layout()
		}
		return m, nil
	case "shift+up":
		m.source.Scroll(-1)
		return m, nil
	case "shift+down":
		m.source.Scroll(1)
		return m, nil
	}
	return m, nil
}

// moveCursor shifts the tree cursor and arms the debounced highlight.
// Holding an arrow key keeps re-arming the timer, so only the final
// resting node gets painted.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if !m.tree.Move(delta) {
		return m, nil
	}
	return m.scheduleHighlight()
}

func (m Model) scheduleHighlight() (tea.Model, tea.Cmd) {
	n := m.tree.Selected()
	if n == nil {
		return m, nil
	}
	seq := m.sched.CursorMoved(n, time.Now())
	return m, tea.Tick(astview.DebounceInterval, func(time.Time) tea.Msg {
		return highlightTickMsg{seq: seq}
	})
}
