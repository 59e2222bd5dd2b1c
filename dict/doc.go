// Package dict provides a dynamically typed, tree structured value container.
//
// # Overview
//
// A Node holds one of the kinds Null, Number, String, Bool, Object or Array.
// Scalars keep their value as canonical text in Raw; objects and arrays keep
// an ordered list of keyed children.  Array children are keyed by the decimal
// string of their index.
//
// The zero Node is Null.  The first write through Key or Index decides whether
// a node is an object or an array:
//
//	cfg := dict.New()
//	cfg.Key("string").SetString("string")
//	cfg.Key("float").SetFloat(123.456)
//	cfg.Key("outer").Key("inner").Key("value1").SetString("hello")
//	cfg.Key("outer").Key("inner").Key("array").MustIndex(1).SetString("world")
//
// Index back-fills missing elements with Null nodes, so the array above has
// two elements.  Writing a key into an array, or an index into an object,
// discards the existing children: the node changes kind, it does not merge.
//
// # Accessors
//
// AsString, AsInt, AsFloat and AsBool read scalars.  In Strict mode (the
// default) reading a Null node fails with ErrNotSet and reading the wrong
// kind fails with ErrTypeMismatch.  In Permissive mode both return the zero
// value of the requested type instead:
//
//	n := dict.New(dict.WithMode(dict.Permissive))
//	i, _ := n.Key("missing").AsInt() // 0, nil
//
// # Ownership
//
// A Node owns its children exclusively.  Clone and Merge deep copy; there is
// no sharing between trees.  A tree is not safe for concurrent mutation.
package dict
