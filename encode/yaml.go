package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/ndict/dict"
)

// yamlNumber writes the canonical text of a number unchanged.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func toYAML(node *dict.Node) any {
	switch node.Kind {
	case dict.ObjectKind:
		res := make(yaml.MapSlice, 0, node.Count())
		for k, v := range node.All() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(v)})
		}
		return res
	case dict.ArrayKind:
		res := make([]any, 0, node.Count())
		for _, v := range node.All() {
			res = append(res, toYAML(v))
		}
		return res
	case dict.NumberKind:
		return yamlNumber(node.Raw)
	case dict.StringKind:
		return node.Raw
	case dict.BoolKind:
		b, _ := node.AsBool()
		return b
	default:
		return nil
	}
}

func encodeYAML(node *dict.Node, w io.Writer, es *EncState) error {
	indent := 2
	if es.indentSet && es.indent > 0 {
		indent = es.indent
	}
	var v any = toYAML(node)
	if node.Kind == dict.NullKind {
		v = yaml.MapSlice{}
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
