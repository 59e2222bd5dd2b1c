package dict

import (
	"fmt"
	"strconv"
)

// InsertAt inserts a new Null element at i, shifting later elements up, and
// returns it.  i may equal Count to append.  A node that is not an array
// becomes an empty array first.
func (n *Node) InsertAt(i int) (*Node, error) {
	if n.Kind != ArrayKind {
		n.reset(ArrayKind)
	}
	if i < 0 || i > len(n.entries) || len(n.entries) > n.MaxIndex() {
		return nil, fmt.Errorf("%w: insert at %d of %d (max %d)", ErrIndex, i, len(n.entries), n.MaxIndex())
	}
	c := n.child()
	n.entries = append(n.entries, entry{})
	copy(n.entries[i+1:], n.entries[i:])
	n.entries[i] = entry{node: c}
	n.renumber(i)
	return c, nil
}

// RemoveAt removes the array element at i, shifting later elements down, and
// reports whether there was one.
func (n *Node) RemoveAt(i int) bool {
	if n.Kind != ArrayKind || i < 0 || i >= len(n.entries) {
		return false
	}
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	n.renumber(i)
	return true
}

func (n *Node) renumber(from int) {
	for j := from; j < len(n.entries); j++ {
		n.entries[j].key = strconv.Itoa(j)
	}
}
