package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrApply = errors.New("cannot apply change")

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

var opNames = map[Op]string{
	Insert:  "insert",
	Delete:  "delete",
	Replace: "replace",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("<op %d>", int(o))
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	for k, v := range opNames {
		if v == string(d) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown op %q", string(d))
}

// Change is a single edit.  From is nil for Insert and To is nil for Delete.
// Edits holds the character level difference of a Replace between two
// strings.
type Change struct {
	Op    Op
	Path  []dict.PathElem
	From  *dict.Node
	To    *dict.Node
	Edits []diffpatch.Diff
}

func (c Change) PathString() string {
	if len(c.Path) == 0 {
		return "$"
	}
	return dict.FormatPath(c.Path)
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return "+ " + c.PathString() + ": " + wire(c.To)
	case Delete:
		return "- " + c.PathString() + ": " + wire(c.From)
	default:
		return "~ " + c.PathString() + ": " + wire(c.From) + " -> " + wire(c.To)
	}
}

// Format renders changes one per line.
func Format(changes []Change) string {
	var b strings.Builder
	for _, c := range changes {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func wire(n *dict.Node) string {
	if n == nil {
		return "null"
	}
	s, err := encode.String(n, encode.EncodeWire(true))
	if err != nil {
		return err.Error()
	}
	return s
}

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Replace
			r.Edits = reverseEdits(c.Edits)
		}
		res[len(changes)-1-i] = r
	}
	return res
}

func reverseEdits(edits []diffpatch.Diff) []diffpatch.Diff {
	if edits == nil {
		return nil
	}
	res := make([]diffpatch.Diff, len(edits))
	for i, e := range edits {
		res[i] = diffpatch.Diff{Type: -e.Type, Text: e.Text}
	}
	return res
}
