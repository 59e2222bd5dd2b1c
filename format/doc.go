// Package format names the document formats ndict reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//
// JSON is the native format.  YAML is supported as an input and output
// format for interoperability; it maps onto the same value tree.
//
// # Related Packages
//
//   - github.com/signadot/ndict/parse - Parse text to a tree
//   - github.com/signadot/ndict/encode - Encode a tree to text
package format
