// Package ndict provides a dynamically typed value tree with a JSON codec.
//
// The tree itself lives in package dict; this package ties it to the codec:
//
//	cfg, err := ndict.Decode(`{"int": 123, "arr": [1, 2, 3]}`)
//	if err != nil {
//	    return err
//	}
//	i, err := cfg.Key("arr").At(1).AsInt() // 2
//
//	text := ndict.Encode(cfg, 4)
//
// Merge decodes a document over a copy of a base tree, and Read decodes a
// file.  Patch and MergePatch apply RFC 6902 and RFC 7386 patches, and
// Match tests a tree against a pattern.
//
// # Related Packages
//
//   - github.com/signadot/ndict/dict - The value tree
//   - github.com/signadot/ndict/parse - Decoder options
//   - github.com/signadot/ndict/encode - Encoder options
package ndict
