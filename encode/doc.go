// Package encode renders dict trees as text.
//
// # Usage
//
//	// Pretty printed JSON, four spaces per level
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact single line JSON
//	s := encode.String(node, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// The default layout puts every object member on its own line as
//
//	"key" : value
//
// indented by the indent width times the nesting level, with a comma after
// all but the last member.  Arrays are written inline without spaces.  Null
// members are written as null; a Null root is written as an empty object.
// Strings are written between double quotes exactly as they are stored:
// escape sequences kept by the decoder are passed through.
//
// JSON output has no trailing newline; YAML output ends with one.
//
// # Related Packages
//
//   - github.com/signadot/ndict/dict - The value tree
//   - github.com/signadot/ndict/parse - Parse text to a tree
package encode
