package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	runtimesvc "github.com/lexcodex/astare/internal/astare/runtime"
)

func testModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()
	cfg := runtimesvc.DefaultConfig()
	cfg.Workspace = dir
	cfg.ConfigPath = filepath.Join(dir, ".astare", "config.yaml")
	cfg.HistoryPath = filepath.Join(dir, ".astare", "history.db")
	cfg.LogPath = filepath.Join(dir, ".astare", "astare.log")

	rt, err := runtimesvc.New(cfg)
	if err != nil {
		t.Fatalf("runtime: %v", err)
	}
	t.Cleanup(func() { rt.Close() })

	m := NewModel(rt, "")
	m.pickerOpen = false

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = resized.(Model)

	doc := &runtimesvc.Document{
		Path:     "demo.py",
		Language: "python",
		Lines:    demoLines(10),
		Tree:     fixtureRoot(),
		ParseOK:  true,
	}
	m.installDocument(doc)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestCursorMoveArmsDebounce(t *testing.T) {
	m := testModel(t)

	if len(m.source.hl.Instructions) != 0 {
		t.Fatalf("file root has no extent, highlight should start empty")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatalf("cursor movement must arm the highlight timer")
	}
	if len(m.source.hl.Instructions) != 0 {
		t.Fatalf("highlight must not change before the timer fires")
	}

	m, _ = update(t, m, cmd())
	if len(m.source.hl.Instructions) == 0 {
		t.Fatalf("highlight should apply after the timer fires")
	}
	if m.status.location == "" {
		t.Fatalf("status bar should show the selection extent")
	}
}

func TestStaleTimerIsIgnored(t *testing.T) {
	m := testModel(t)

	m, first := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, second := update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = update(t, m, first())
	if len(m.source.hl.Instructions) != 0 {
		t.Fatalf("the superseded timer must not paint")
	}

	m, _ = update(t, m, second())
	if len(m.source.hl.Instructions) == 0 {
		t.Fatalf("the latest timer must paint")
	}
}

func TestEnterHighlightsImmediately(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.source.hl.Instructions) == 0 {
		t.Fatalf("enter must highlight without waiting for the timer")
	}
}

func TestEnterCancelsPendingTimer(t *testing.T) {
	m := testModel(t)

	m, pending := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	chosen := m.source.hl
	m, _ = update(t, m, pending())
	if len(m.source.hl.Instructions) != len(chosen.Instructions) {
		t.Fatalf("a timer armed before enter must be a no-op")
	}
}

func TestNewDocumentCancelsPendingTimer(t *testing.T) {
	m := testModel(t)

	m, pending := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m.installDocument(&runtimesvc.Document{
		Path:    "other.py",
		Lines:   demoLines(3),
		Tree:    fixtureRoot(),
		ParseOK: true,
	})

	m, _ = update(t, m, pending())
	if len(m.source.hl.Instructions) != 0 {
		t.Fatalf("a timer from the previous document must not paint")
	}
}

func TestRainbowToggleRepaints(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	plain := len(m.source.hl.Instructions)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.rainbow {
		t.Fatalf("ctrl+r should enable rainbow mode")
	}
	if len(m.source.hl.Instructions) < plain {
		t.Fatalf("rainbow mode should not lose the primary highlight")
	}
}

func TestThemeToggleFlipsStyles(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	if m.dark {
		t.Fatalf("ctrl+d should switch to the light theme")
	}
	for _, inst := range m.source.hl.Instructions {
		if inst.Style.Dark {
			t.Fatalf("instructions should carry the light theme")
		}
	}
}

func TestPaneResizeKeysClampShare(t *testing.T) {
	m := testModel(t)

	for i := 0; i < 30; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	}
	if m.treeShare != 2 {
		t.Fatalf("tree share should clamp at 2, got %d", m.treeShare)
	}
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	}
	if m.treeShare != 18 {
		t.Fatalf("tree share should clamp at 18, got %d", m.treeShare)
	}
}
