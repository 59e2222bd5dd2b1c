package dict

import (
	"fmt"
	"iter"
	"strconv"
)

// DefaultMaxIndex is the largest array index accepted by Index unless a node
// is created with MaxIndex.
const DefaultMaxIndex = 1024

// Mode selects how scalar accessors treat a kind mismatch or an unset value.
type Mode int

const (
	// Strict accessors fail with ErrTypeMismatch or ErrNotSet.
	Strict Mode = iota
	// Permissive accessors return the zero value of the requested type.
	Permissive
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("<mode %d>", int(m))
	}
}

// Node is a single value of the tree.  The zero value is an empty, strict
// Null node ready for use.
//
// A Node owns its children.  Copying a Node struct by value shares the
// children; use Clone for an independent copy.
type Node struct {
	Kind Kind
	// Raw is the canonical text of a scalar: the decimal form of a
	// number, "true" or "false" for a boolean, the unquoted text of a
	// string.  It is empty for Null, Object and Array nodes.
	Raw string

	entries []entry
	mode    Mode
	// maxIndex holds the configured limit plus one; zero selects
	// DefaultMaxIndex.
	maxIndex int
}

type entry struct {
	key  string
	node *Node
}

type Option func(*Node)

func WithMode(m Mode) Option {
	return func(n *Node) { n.mode = m }
}

// MaxIndex sets the largest index Index will create.  Values below zero
// select DefaultMaxIndex.
func MaxIndex(i int) Option {
	return func(n *Node) {
		if i < 0 {
			n.maxIndex = 0
			return
		}
		n.maxIndex = i + 1
	}
}

// New returns an empty Null node configured by opts.
func New(opts ...Option) *Node {
	n := &Node{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Mode returns the accessor policy of the node.
func (n *Node) Mode() Mode { return n.mode }

// SetMode changes the accessor policy of n and all of its descendants.
func (n *Node) SetMode(m Mode) {
	n.mode = m
	for i := range n.entries {
		n.entries[i].node.SetMode(m)
	}
}

func (n *Node) MaxIndex() int {
	if n.maxIndex == 0 {
		return DefaultMaxIndex
	}
	return n.maxIndex - 1
}

// child returns a new Null node carrying the settings of n.
func (n *Node) child() *Node {
	return &Node{mode: n.mode, maxIndex: n.maxIndex}
}

// Key returns the child stored under key, appending a new Null child if there
// is none.  A node that is not an object becomes an empty object first: array
// entries or a scalar payload are discarded.
func (n *Node) Key(key string) *Node {
	if n.Kind != ObjectKind {
		n.reset(ObjectKind)
	}
	for i := range n.entries {
		if n.entries[i].key == key {
			return n.entries[i].node
		}
	}
	c := n.child()
	n.entries = append(n.entries, entry{key: key, node: c})
	return c
}

// Index returns the array element at i.  Elements 0..i are created as Null
// when missing.  A node that is not an array becomes an empty array first,
// discarding object entries or a scalar payload.
func (n *Node) Index(i int) (*Node, error) {
	if i < 0 || i > n.MaxIndex() {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrIndex, i, n.MaxIndex())
	}
	if n.Kind != ArrayKind {
		n.reset(ArrayKind)
	}
	for j := len(n.entries); j <= i; j++ {
		n.entries = append(n.entries, entry{key: strconv.Itoa(j), node: n.child()})
	}
	return n.entries[i].node, nil
}

// MustIndex is like Index but panics on error.
func (n *Node) MustIndex(i int) *Node {
	c, err := n.Index(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the child stored under key or nil.  It never modifies n.
func (n *Node) Get(key string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.entries {
		if n.entries[i].key == key {
			return n.entries[i].node
		}
	}
	return nil
}

// At returns the array element at i or nil.  It never modifies n.
func (n *Node) At(i int) *Node {
	if n == nil || n.Kind != ArrayKind || i < 0 || i >= len(n.entries) {
		return nil
	}
	return n.entries[i].node
}

func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Delete removes the object member key, reporting whether it existed.
func (n *Node) Delete(key string) bool {
	if n.Kind != ObjectKind {
		return false
	}
	for i := range n.entries {
		if n.entries[i].key == key {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of object members or array elements.
func (n *Node) Count() int {
	return len(n.entries)
}

// Keys returns a copy of the member keys: insertion order for objects,
// ascending decimal indices for arrays.
func (n *Node) Keys() []string {
	res := make([]string, len(n.entries))
	for i := range n.entries {
		res[i] = n.entries[i].key
	}
	return res
}

// All iterates over the entries of n in order.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i := range n.entries {
			if !yield(n.entries[i].key, n.entries[i].node) {
				return
			}
		}
	}
}

// Clear resets n to an empty Null node.  Settings are kept.
func (n *Node) Clear() {
	n.reset(NullKind)
}

// MakeObject turns n into an object, leaving it untouched if it already is
// one.
func (n *Node) MakeObject() *Node {
	if n.Kind != ObjectKind {
		n.reset(ObjectKind)
	}
	return n
}

// MakeArray turns n into an array, leaving it untouched if it already is one.
func (n *Node) MakeArray() *Node {
	if n.Kind != ArrayKind {
		n.reset(ArrayKind)
	}
	return n
}

func (n *Node) reset(k Kind) {
	n.Kind = k
	n.Raw = ""
	n.entries = nil
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	return res
}

// CloneTo overwrites dst with a deep copy of n, including settings.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.mode = n.mode
	dst.maxIndex = n.maxIndex
	n.copyInto(dst)
	return dst
}

// copyInto overwrites the content of dst with a deep copy of the content of
// n.  Copied descendants take the settings of dst.
func (n *Node) copyInto(dst *Node) {
	dst.Kind = n.Kind
	dst.Raw = n.Raw
	if len(n.entries) == 0 {
		dst.entries = nil
		return
	}
	entries := make([]entry, len(n.entries))
	for i := range n.entries {
		c := dst.child()
		n.entries[i].node.copyInto(c)
		entries[i] = entry{key: n.entries[i].key, node: c}
	}
	dst.entries = entries
}

func (n *Node) Visit(f func(key string, n *Node) error) error {
	return n.visit("", f)
}

func (n *Node) visit(key string, f func(string, *Node) error) error {
	if err := f(key, n); err != nil {
		return err
	}
	for i := range n.entries {
		if err := n.entries[i].node.visit(n.entries[i].key, f); err != nil {
			return err
		}
	}
	return nil
}
