package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexcodex/astare/astview"
	runtimesvc "github.com/lexcodex/astare/internal/astare/runtime"
)

// Run launches the Bubble Tea UI. An empty or directory path opens the
// file picker instead of a document.
func Run(ctx context.Context, rt *runtimesvc.Runtime, path string) error {
	if rt == nil {
		return fmt.Errorf("runtime is required")
	}
	m := NewModel(rt, path)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model coordinates the tree pane, source pane, breadcrumb, and
// status bar.
type Model struct {
	runtime *runtimesvc.Runtime
	doc     *runtimesvc.Document

	tree   *TreeView
	source *SourceView
	status StatusBar

	picker     filepicker.Model
	pickerOpen bool

	sched astview.Scheduler

	rainbow bool
	dark    bool

	// treeShare is the tree pane width in twentieths of the window.
	treeShare int

	initialPath string

	width  int
	height int
	ready  bool
}

// NewModel initializes the explorer with defaults from the runtime.
func NewModel(rt *runtimesvc.Runtime, path string) Model {
	cfg := rt.Config

	picker := filepicker.New()
	picker.CurrentDirectory = cfg.Workspace
	picker.ShowHidden = false

	pickerOpen := true
	if path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			pickerOpen = false
		} else if err == nil {
			picker.CurrentDirectory = path
			path = ""
		}
	}

	return Model{
		runtime:     rt,
		tree:        NewTreeView(),
		source:      NewSourceView(),
		status:      StatusBar{rainbow: cfg.Rainbow, dark: cfg.Dark},
		picker:      picker,
		pickerOpen:  pickerOpen,
		rainbow:     cfg.Rainbow,
		dark:        cfg.Dark,
		treeShare:   8,
		initialPath: path,
	}
}

// Init fulfills the Bubble Tea Model interface.
func (m Model) Init() tea.Cmd {
	if m.pickerOpen {
		return m.picker.Init()
	}
	return loadDocCmd(m.runtime, m.initialPath)
}

// docMsg carries a freshly loaded document into the update loop.
type docMsg struct {
	doc *runtimesvc.Document
	err error
}

// highlightTickMsg fires when a debounce interval elapses. The token
// identifies which cursor movement armed it; stale tokens are ignored.
type highlightTickMsg struct {
	seq uint64
}

func loadDocCmd(rt *runtimesvc.Runtime, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := rt.LoadFile(context.Background(), path)
		return docMsg{doc: doc, err: err}
	}
}

// applyHighlight composes and installs the highlight for a node.
func (m *Model) applyHighlight(n *astview.Node) {
	if n == nil {
		return
	}
	hl := astview.Compose(n, m.rainbow, m.dark)
	m.source.SetHighlight(hl)
	sp, ok := astview.Resolve(n)
	m.status.SetLocation(sp, ok)
}

// installDocument swaps the loaded file into every pane and cancels
// any highlight still pending against the previous tree.
func (m *Model) installDocument(doc *runtimesvc.Document) {
	m.doc = doc
	m.sched.Reset()
	m.tree.SetRoot(doc.Tree)
	m.source.SetLines(doc.Lines)
	m.status.SetDocument(doc.Path, doc.Language, doc.ParseOK)
	m.applyHighlight(m.tree.Selected())
}
