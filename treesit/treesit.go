// Package treesit adapts tree-sitter parse trees to the read-only
// syntax contract the astview engine explores.
package treesit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lexcodex/astare/astview"
)

// ErrParseUnavailable reports that no syntax tree could be produced
// for a file, either because the language is unsupported or the
// parser failed. It is not fatal: the source text is still available
// and the explorer shows a degraded single-node tree.
var ErrParseUnavailable = errors.New("treesit: no syntax tree available")

// File bundles everything the explorer needs about a loaded source
// file. Root is nil when parsing was unavailable; Lines are always
// populated so the source pane has something to show.
type File struct {
	Path     string
	Language string
	Lines    []string
	Root     astview.Ast
	// Tree keeps the parse alive; node adapters reference into it.
	tree *sitter.Tree
}

// Load reads and parses path. Read failures are returned as-is; parse
// failures return the File (with a nil Root) wrapped with
// ErrParseUnavailable so callers can degrade instead of aborting.
func Load(ctx context.Context, path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treesit: read %s: %w", path, err)
	}
	f := &File{
		Path:  path,
		Lines: splitLines(src),
	}

	lang, ok := LanguageForFile(path)
	if !ok {
		return f, fmt.Errorf("%w: unsupported extension %s", ErrParseUnavailable, path)
	}
	f.Language = lang
	grammar, ok := grammarFor(lang)
	if !ok {
		return f, fmt.Errorf("%w: no grammar for %s", ErrParseUnavailable, lang)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil || tree == nil || tree.RootNode() == nil {
		return f, fmt.Errorf("%w: parse %s: %v", ErrParseUnavailable, path, err)
	}
	f.tree = tree
	f.Root = node{ts: tree.RootNode(), src: src}
	return f, nil
}

func splitLines(src []byte) []string {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	return strings.Split(text, "\n")
}
