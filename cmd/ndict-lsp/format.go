package main

import (
	"context"
	"strings"

	"github.com/signadot/ndict/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	return formatEdits(doc, int(params.Options.TabSize))
}

// formatEdits returns a single edit replacing the whole document by its
// encoding, or no edits when the encoding is unchanged.
func formatEdits(doc *document, indent int) ([]protocol.TextEdit, error) {
	opts := []encode.EncodeOption{encode.EncodeFormat(doc.format)}
	if indent > 0 {
		opts = append(opts, encode.EncodeIndent(indent))
	}
	formatted, err := encode.String(doc.node, opts...)
	if err != nil {
		return nil, err
	}
	if doc.format.IsJSON() {
		formatted += "\n"
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
