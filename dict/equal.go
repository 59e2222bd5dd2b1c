package dict

// Equal reports whether a and b hold the same kinds, the same scalar text and
// the same keys in the same order, recursively.  Settings are ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Raw != b.Raw || len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		ae, be := &a.entries[i], &b.entries[i]
		if ae.key != be.key {
			return false
		}
		if !Equal(ae.node, be.node) {
			return false
		}
	}
	return true
}

// EqualValues is like Equal but compares numbers by value, so that "1.50" and
// "1.5" are equal.
func EqualValues(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || len(a.entries) != len(b.entries) {
		return false
	}
	switch a.Kind {
	case NumberKind:
		if a.Raw != b.Raw && Atof(a.Raw) != Atof(b.Raw) {
			return false
		}
	default:
		if a.Raw != b.Raw {
			return false
		}
	}
	for i := range a.entries {
		ae, be := &a.entries[i], &b.entries[i]
		if ae.key != be.key || !EqualValues(ae.node, be.node) {
			return false
		}
	}
	return true
}
