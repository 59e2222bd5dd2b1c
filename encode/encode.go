package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/format"
)

// DefaultIndent is the number of spaces per nesting level of the pretty
// JSON layout.
const DefaultIndent = 4

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent    int
	indentSet bool
	wire      bool
	format    format.Format

	Color func(dict.Kind, ColorAttr, string) string
}

func Encode(node *dict.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
	switch node.Kind {
	case dict.NullKind:
		return encodeObject(node, w, 0, es)
	default:
		return encode(node, w, 0, es)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, k dict.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func quote(v string) string {
	return `"` + v + `"`
}

func encode(node *dict.Node, w io.Writer, level int, es *EncState) error {
	switch node.Kind {
	case dict.ObjectKind:
		return encodeObject(node, w, level, es)
	case dict.ArrayKind:
		return encodeArray(node, w, level, es)
	case dict.StringKind:
		return writeString(w, applyColor(es, dict.StringKind, ValueColor, quote(node.Raw)))
	case dict.NullKind:
		return writeString(w, applyColor(es, dict.NullKind, ValueColor, "null"))
	default:
		return writeString(w, applyColor(es, node.Kind, ValueColor, node.Raw))
	}
}

func encodeObject(node *dict.Node, w io.Writer, level int, es *EncState) error {
	if es.wire {
		return encodeWireObject(node, w, level, es)
	}
	if err := writeString(w, applyColor(es, dict.ObjectKind, SepColor, "{")+"\n"); err != nil {
		return err
	}
	pad := strings.Repeat(" ", es.indent*(level+1))
	i, n := 0, node.Count()
	for k, v := range node.All() {
		field := pad + applyColor(es, dict.ObjectKind, FieldColor, quote(k)) +
			applyColor(es, dict.ObjectKind, SepColor, " : ")
		if err := writeString(w, field); err != nil {
			return err
		}
		if err := encode(v, w, level+1, es); err != nil {
			return err
		}
		i++
		sep := "\n"
		if i < n {
			sep = applyColor(es, dict.ObjectKind, SepColor, ",") + "\n"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
	}
	return writeString(w, strings.Repeat(" ", es.indent*level)+applyColor(es, dict.ObjectKind, SepColor, "}"))
}

func encodeWireObject(node *dict.Node, w io.Writer, level int, es *EncState) error {
	if err := writeString(w, applyColor(es, dict.ObjectKind, SepColor, "{")); err != nil {
		return err
	}
	i := 0
	for k, v := range node.All() {
		if i > 0 {
			if err := writeString(w, applyColor(es, dict.ObjectKind, SepColor, ",")); err != nil {
				return err
			}
		}
		i++
		field := applyColor(es, dict.ObjectKind, FieldColor, quote(k)) + applyColor(es, dict.ObjectKind, SepColor, ":")
		if err := writeString(w, field); err != nil {
			return err
		}
		if err := encode(v, w, level+1, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, dict.ObjectKind, SepColor, "}"))
}

func encodeArray(node *dict.Node, w io.Writer, level int, es *EncState) error {
	if err := writeString(w, applyColor(es, dict.ArrayKind, SepColor, "[")); err != nil {
		return err
	}
	i := 0
	for _, v := range node.All() {
		if i > 0 {
			if err := writeString(w, applyColor(es, dict.ArrayKind, SepColor, ",")); err != nil {
				return err
			}
		}
		i++
		if err := encode(v, w, level+1, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, dict.ArrayKind, SepColor, "]"))
}
