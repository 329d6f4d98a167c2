// Package runtime wires the astare CLI, Bubble Tea UI, and inspector
// server to the shared engine. It centralizes configuration, the
// open-file history, and log management.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lexcodex/astare/astview"
	"github.com/lexcodex/astare/persistence"
	"github.com/lexcodex/astare/treesit"
)

// Runtime owns the resources shared by every entry point.
type Runtime struct {
	Config  Config
	History *persistence.HistoryStore
	Logger  *log.Logger

	logFile io.Closer
}

// Document is one loaded source file ready for display. Tree is the
// projected display tree; when ParseOK is false it is a bare root
// with no children and the source pane carries the whole story.
type Document struct {
	Path     string
	Language string
	Lines    []string
	Tree     *astview.Node
	ParseOK  bool
}

// New builds a runtime. Logs go to the log file only; stdout belongs
// to the terminal UI.
func New(cfg Config) (*Runtime, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.New(logFile, "astare ", log.LstdFlags|log.Lmicroseconds)

	workspaceCfg, err := LoadWorkspaceConfig(cfg.ConfigPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Printf("workspace config load failed: %v", err)
		}
		workspaceCfg = WorkspaceConfig{}
	}
	cfg.apply(workspaceCfg)

	history, err := persistence.OpenHistory(cfg.HistoryPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open history: %w", err)
	}

	return &Runtime{
		Config:  cfg,
		History: history,
		Logger:  logger,
		logFile: logFile,
	}, nil
}

// LoadFile reads, parses, and projects path. A file whose language has
// no parser still loads: the document carries the source lines and a
// single-node tree, with ParseOK false.
func (r *Runtime) LoadFile(ctx context.Context, path string) (*Document, error) {
	f, err := treesit.Load(ctx, path)
	if err != nil && !errors.Is(err, treesit.ErrParseUnavailable) {
		return nil, err
	}
	if err != nil {
		r.Logger.Printf("load %s: %v", path, err)
	}

	projector := astview.Projector{NameDefs: r.Config.NameDefs}
	doc := &Document{
		Path:     f.Path,
		Language: f.Language,
		Lines:    f.Lines,
		Tree:     projector.Project(f.Path, f.Root),
		ParseOK:  f.Root != nil,
	}
	if touchErr := r.History.Touch(ctx, f.Path, f.Language); touchErr != nil {
		r.Logger.Printf("history touch %s: %v", f.Path, touchErr)
	}
	return doc, nil
}

// Recent lists the most recently opened files.
func (r *Runtime) Recent(ctx context.Context) ([]persistence.RecentFile, error) {
	return r.History.Recent(ctx, r.Config.RecentLimit)
}

// Close releases resources managed by the runtime.
func (r *Runtime) Close() error {
	var firstErr error
	if r.History != nil {
		firstErr = r.History.Close()
	}
	if r.logFile != nil {
		if err := r.logFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
