// Package server exposes the explorer engine to editors and scripts
// over a small JSON-RPC protocol.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/lexcodex/astare/astview"
	"github.com/lexcodex/astare/treesit"
)

// Inspector answers structural queries about source files. Each
// request parses the file fresh, so results always reflect what is on
// disk.
type Inspector struct {
	Logger *log.Logger
}

// FileParams identifies the file a request is about.
type FileParams struct {
	URI protocol.DocumentURI `json:"uri"`
}

// PositionParams identifies a cursor position inside a file.
type PositionParams struct {
	URI      protocol.DocumentURI `json:"uri"`
	Position protocol.Position    `json:"position"`
}

// BreadcrumbResult is the node-to-root label path at a position.
type BreadcrumbResult struct {
	Path []string `json:"path"`
}

// SpanResult reports the source extent of the node at a position plus
// the extents of its enclosing nodes, nearest first.
type SpanResult struct {
	Primary   *protocol.Range  `json:"primary,omitempty"`
	Ancestors []protocol.Range `json:"ancestors"`
}

// Serve accepts connections on addr until ctx is cancelled.
func (s *Inspector) Serve(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	s.logf("inspector listening on %s", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{})
		jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))
	}
}

func (s *Inspector) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	switch req.Method {
	case "astare/outline":
		var params FileParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.outline(ctx, params)
	case "astare/breadcrumb":
		var params PositionParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.breadcrumb(ctx, params)
	case "astare/span":
		var params PositionParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.span(ctx, params)
	default:
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not handled"}
	}
}

func (s *Inspector) outline(ctx context.Context, params FileParams) ([]protocol.DocumentSymbol, error) {
	root, err := s.loadTree(ctx, params.URI)
	if err != nil {
		return nil, err
	}
	return outlineSymbols(root), nil
}

func (s *Inspector) breadcrumb(ctx context.Context, params PositionParams) (*BreadcrumbResult, error) {
	root, err := s.loadTree(ctx, params.URI)
	if err != nil {
		return nil, err
	}
	target := nodeAt(root, params.Position)
	if target == nil {
		target = root
	}
	return &BreadcrumbResult{Path: astview.Breadcrumb(target)}, nil
}

func (s *Inspector) span(ctx context.Context, params PositionParams) (*SpanResult, error) {
	root, err := s.loadTree(ctx, params.URI)
	if err != nil {
		return nil, err
	}
	result := &SpanResult{Ancestors: []protocol.Range{}}
	target := nodeAt(root, params.Position)
	if target == nil {
		return result, nil
	}
	if sp, ok := astview.Resolve(target); ok {
		r := spanRange(sp)
		result.Primary = &r
	}
	first := true
	for sp := range astview.AncestorSpans(target) {
		if first {
			// The first yielded span is the node's own.
			first = false
			continue
		}
		result.Ancestors = append(result.Ancestors, spanRange(sp))
	}
	return result, nil
}

func (s *Inspector) loadTree(ctx context.Context, uri protocol.DocumentURI) (*astview.Node, error) {
	path := uriToPath(uri)
	f, err := treesit.Load(ctx, path)
	if err != nil {
		s.logf("load %s: %v", path, err)
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	projector := astview.Projector{NameDefs: true}
	return projector.Project(path, f.Root), nil
}

func (s *Inspector) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

func unmarshalParams(req *jsonrpc2.Request, out interface{}) error {
	if req.Params == nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "params required"}
	}
	if err := json.Unmarshal(*req.Params, out); err != nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeParseError, Message: err.Error()}
	}
	return nil
}

// outlineSymbols collects the named definitions under root, keeping
// the tree shape: a method nests under its class.
func outlineSymbols(root *astview.Node) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, child := range root.Children {
		symbols = append(symbols, collectSymbols(child)...)
	}
	return symbols
}

func collectSymbols(n *astview.Node) []protocol.DocumentSymbol {
	var nested []protocol.DocumentSymbol
	for _, child := range n.Children {
		nested = append(nested, collectSymbols(child)...)
	}
	if n.Payload != astview.PayloadAst || n.Detail == "" {
		return nested
	}
	sym := protocol.DocumentSymbol{
		Name:     n.Detail,
		Detail:   n.Label,
		Kind:     symbolKind(n.Label),
		Children: nested,
	}
	if sp, ok := astview.Resolve(n); ok {
		sym.Range = spanRange(sp)
		sym.SelectionRange = sym.Range
	}
	return []protocol.DocumentSymbol{sym}
}

func symbolKind(kind string) protocol.SymbolKind {
	lower := strings.ToLower(kind)
	switch {
	case strings.Contains(lower, "method"):
		return protocol.SymbolKindMethod
	case strings.Contains(lower, "func"):
		return protocol.SymbolKindFunction
	case strings.Contains(lower, "class"), strings.Contains(lower, "struct"), strings.Contains(lower, "type"):
		return protocol.SymbolKindClass
	case strings.Contains(lower, "module"), strings.Contains(lower, "package"):
		return protocol.SymbolKindModule
	default:
		return protocol.SymbolKindVariable
	}
}

// nodeAt returns the deepest display node whose source extent contains
// the position, or nil when nothing does.
func nodeAt(root *astview.Node, pos protocol.Position) *astview.Node {
	line, col := int(pos.Line)+1, int(pos.Character)
	var best *astview.Node
	var walk func(n *astview.Node)
	walk = func(n *astview.Node) {
		if n.Payload == astview.PayloadAst && n.Ast != nil {
			if sp, ok := n.Ast.Span(); ok && sp.Contains(line, col) {
				best = n
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return best
}

func spanRange(sp astview.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sp.StartLine - 1), Character: uint32(sp.StartCol)},
		End:   protocol.Position{Line: uint32(sp.EndLine - 1), Character: uint32(sp.EndCol)},
	}
}

func uriToPath(uri protocol.DocumentURI) string {
	return strings.TrimPrefix(string(uri), "file://")
}
