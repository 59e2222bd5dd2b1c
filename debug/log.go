package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
)

// Wire formats a tree as compact JSON for %s verbs.
type Wire struct{ *dict.Node }

func (w Wire) String() string {
	if w.Node == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(w.Node, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *dict.Node] %v", w.Node)
	}
	return buf.String()
}

// Logf prints to stderr.  Tree and plain Go container arguments are rendered
// as JSON text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *dict.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
				args[i] = fmt.Sprintf("[raw *dict.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
