package main

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/parse"
	"github.com/signadot/ndict/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	format    format.Format
	node      *dict.Node
	err       error
	positions map[*dict.Node]*token.Pos
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// newDocument decodes content, choosing the format by the extension of uri.
// A document which fails to decode keeps its error and has no node.
func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		format:    format.FromExt(filepath.Ext(uri)),
		positions: make(map[*dict.Node]*token.Pos),
	}
	doc.node, doc.err = parse.ParseString(content,
		parse.ParseFormat(doc.format),
		parse.ParsePositions(doc.positions))
	return doc
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: validateDocument(doc),
	})
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	}
	var se *token.ScanErr
	if errors.As(doc.err, &se) {
		line, col := se.Pos.LineCol()
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// DidChange takes the last change as the whole document, as the server
// registers for full synchronization.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
