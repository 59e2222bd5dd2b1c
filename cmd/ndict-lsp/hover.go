package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	target := findNodeAtPosition(doc.node, doc.positions, int(params.Position.Line), int(params.Position.Character))
	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtPosition returns the node starting on line whose column is
// closest to col.
func findNodeAtPosition(root *dict.Node, positions map[*dict.Node]*token.Pos, line, col int) *dict.Node {
	var (
		best    *dict.Node
		bestCol int
	)
	var visit func(*dict.Node)
	visit = func(node *dict.Node) {
		if pos := positions[node]; pos != nil {
			posLine, posCol := pos.LineCol()
			if posLine == line && (best == nil || abs(posCol-col) < abs(bestCol-col)) {
				best, bestCol = node, posCol
			}
		}
		for _, child := range node.All() {
			visit(child)
		}
	}
	visit(root)
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildHoverText(node *dict.Node) string {
	if node == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("**Kind:** %s", node.Kind)}
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(node *dict.Node) string {
	switch node.Kind {
	case dict.NullKind:
		return "`null`"
	case dict.StringKind:
		val := node.Raw
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%q`", val)
	case dict.ArrayKind:
		return fmt.Sprintf("array with %d elements", node.Count())
	case dict.ObjectKind:
		return fmt.Sprintf("object with %d keys", node.Count())
	default:
		return fmt.Sprintf("`%s`", node.Raw)
	}
}
