package dict

import (
	"fmt"
	"strconv"
	"strings"
)

// PathElem is one step of a path: an object key or an array index.
type PathElem struct {
	Key     string
	Index   int
	IsIndex bool
}

func (e PathElem) String() string {
	if e.IsIndex {
		return "[" + strconv.Itoa(e.Index) + "]"
	}
	if pathQuoteKey(e.Key) {
		return strconv.Quote(e.Key)
	}
	return e.Key
}

func pathQuoteKey(k string) bool {
	return k == "" || strings.ContainsAny(k, `.[]" `)
}

// ParsePath parses paths such as
//
//	a.b[0].c
//	$.a."dotted.key"[2]
//
// An optional leading "$" denotes the root.  Keys containing path syntax must
// be double quoted.
func ParsePath(p string) ([]PathElem, error) {
	p = strings.TrimPrefix(p, "$")
	var res []PathElem
	i := 0
	for i < len(p) {
		switch c := p[i]; c {
		case '.':
			i++
			if i >= len(p) {
				return nil, fmt.Errorf("%w: trailing '.' in %q", ErrPath, p)
			}
			continue
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			idx, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, p[i+1:i+j], p)
			}
			res = append(res, PathElem{Index: idx, IsIndex: true})
			i += j + 1
		case '"':
			j := i + 1
			for j < len(p) && p[j] != '"' {
				if p[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(p) {
				return nil, fmt.Errorf("%w: unterminated quoted key in %q", ErrPath, p)
			}
			key, err := strconv.Unquote(p[i : j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPath, err)
			}
			res = append(res, PathElem{Key: key})
			i = j + 1
		default:
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '[' {
				j++
			}
			res = append(res, PathElem{Key: p[i:j]})
			i = j
		}
	}
	return res, nil
}

func FormatPath(elems []PathElem) string {
	var b strings.Builder
	for i, e := range elems {
		if i > 0 && !e.IsIndex {
			b.WriteByte('.')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// Lookup returns the node at path p without modifying the tree.
func (n *Node) Lookup(p string) (*Node, error) {
	elems, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return n.LookupPath(elems)
}

// LookupPath is like Lookup for a parsed path.
func (n *Node) LookupPath(elems []PathElem) (*Node, error) {
	res := n
	for i, e := range elems {
		var next *Node
		if e.IsIndex {
			next = res.At(e.Index)
		} else if res.Kind == ObjectKind {
			next = res.Get(e.Key)
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, FormatPath(elems[:i+1]))
		}
		res = next
	}
	return res, nil
}

// Ensure returns the node at path p, creating it and any missing parents
// with Key and Index semantics.
func (n *Node) Ensure(p string) (*Node, error) {
	elems, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := n
	for _, e := range elems {
		if !e.IsIndex {
			res = res.Key(e.Key)
			continue
		}
		res, err = res.Index(e.Index)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
