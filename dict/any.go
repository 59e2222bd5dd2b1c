package dict

import (
	"strings"
)

// ToAny converts n to plain Go values: map[string]any for objects, []any for
// arrays, int64 or float64 for numbers, string, bool and nil.
func (n *Node) ToAny() any {
	switch n.Kind {
	case ObjectKind:
		res := make(map[string]any, len(n.entries))
		for i := range n.entries {
			res[n.entries[i].key] = n.entries[i].node.ToAny()
		}
		return res
	case ArrayKind:
		res := make([]any, len(n.entries))
		for i := range n.entries {
			res[i] = n.entries[i].node.ToAny()
		}
		return res
	case NumberKind:
		if strings.ContainsAny(n.Raw, ".eE") {
			return Atof(n.Raw)
		}
		return Atoi(n.Raw)
	case StringKind:
		return n.Raw
	case BoolKind:
		return strings.EqualFold(n.Raw, "true")
	default:
		return nil
	}
}

// FromAny builds a tree from plain Go values, as accepted by Set.
func FromAny(v any, opts ...Option) (*Node, error) {
	n := New(opts...)
	if err := n.Set(v); err != nil {
		return nil, err
	}
	return n, nil
}
