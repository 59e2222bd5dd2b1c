package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"
)

// Apply applies changes in order to a copy of doc.  Inserted object members
// are appended.
func Apply(doc *dict.Node, changes []Change) (*dict.Node, error) {
	res := dict.New()
	if doc != nil {
		res = doc.Clone()
	}
	for i := range changes {
		if err := apply(res, &changes[i]); err != nil {
			return nil, fmt.Errorf("%w: change %d: %w", ErrApply, i, err)
		}
	}
	return res, nil
}

func apply(doc *dict.Node, c *Change) error {
	if debug.Diff() {
		debug.Logf("apply %s\n", c)
	}
	if len(c.Path) == 0 {
		if c.Op == Delete {
			doc.Clear()
			return nil
		}
		return doc.Set(c.To)
	}
	parent, err := doc.LookupPath(c.Path[:len(c.Path)-1])
	if err != nil {
		return err
	}
	last := c.Path[len(c.Path)-1]
	if last.IsIndex && parent.Kind != dict.ArrayKind {
		return fmt.Errorf("%s is %s, not an array", c.PathString(), parent.Kind)
	}
	if !last.IsIndex && parent.Kind != dict.ObjectKind {
		return fmt.Errorf("%s is %s, not an object", c.PathString(), parent.Kind)
	}
	switch c.Op {
	case Insert:
		if last.IsIndex {
			n, err := parent.InsertAt(last.Index)
			if err != nil {
				return err
			}
			return n.Set(c.To)
		}
		if parent.Has(last.Key) {
			return fmt.Errorf("%s exists", c.PathString())
		}
		return parent.Key(last.Key).Set(c.To)
	case Delete:
		ok := false
		if last.IsIndex {
			ok = parent.RemoveAt(last.Index)
		} else {
			ok = parent.Delete(last.Key)
		}
		if !ok {
			return fmt.Errorf("%w: %s", dict.ErrNotFound, c.PathString())
		}
		return nil
	default:
		var n *dict.Node
		if last.IsIndex {
			n = parent.At(last.Index)
		} else {
			n = parent.Get(last.Key)
		}
		if n == nil {
			return fmt.Errorf("%w: %s", dict.ErrNotFound, c.PathString())
		}
		return n.Set(c.To)
	}
}

// JSONPatch renders changes as an RFC 6902 JSON Patch document.
func JSONPatch(changes []Change) *dict.Node {
	res := dict.New(dict.MaxIndex(len(changes))).MakeArray()
	for i, c := range changes {
		op := res.MustIndex(i)
		switch c.Op {
		case Insert:
			op.Key("op").SetString("add")
		case Delete:
			op.Key("op").SetString("remove")
		default:
			op.Key("op").SetString("replace")
		}
		op.Key("path").SetString(Pointer(c.Path))
		if c.Op != Delete {
			op.Key("value").Set(c.To)
		}
	}
	return res
}

// Pointer formats path as an RFC 6901 JSON Pointer.
func Pointer(path []dict.PathElem) string {
	var b strings.Builder
	for _, e := range path {
		b.WriteByte('/')
		if e.IsIndex {
			b.WriteString(strconv.Itoa(e.Index))
			continue
		}
		b.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(e.Key))
	}
	return b.String()
}
