package dict

// Merge recursively merges src into n.
//
// Object members of src that n lacks are deep copied into n.  Members present
// in both are merged recursively when both values are objects; otherwise the
// value from src replaces the one in n, arrays included.  A src that is not an
// object replaces n entirely.
func (n *Node) Merge(src *Node) {
	if src == nil || src == n {
		return
	}
	if src.Kind != ObjectKind {
		src.copyInto(n)
		return
	}
	n.MakeObject()
	for i := range src.entries {
		key, sv := src.entries[i].key, src.entries[i].node
		dv := n.Key(key)
		if sv.Kind == ObjectKind && dv.Kind == ObjectKind {
			dv.Merge(sv)
			continue
		}
		sv.copyInto(dv)
	}
}
