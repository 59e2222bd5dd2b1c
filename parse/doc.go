// Package parse decodes JSON text into dict trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"int": 123, "arr": [1, 2, 3]}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string, with permissive accessors on the result
//	node, err := parse.ParseString(text, parse.ParseMode(dict.Permissive))
//
//	// Parse YAML into the same tree model
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// A JSON document must be a single object.  White space outside of strings
// is insignificant.  Strings are kept verbatim: escape sequences are not
// decoded.  Numbers are stored as canonical decimal text and may not carry
// an exponent.  The keywords true, false and null are matched without
// regard to case.  A trailing comma after the last member of an object or
// the last element of an array is accepted; anything after the closing
// brace of the document is not.
//
// Errors wrap [ErrSyntax], [ErrInvalidValue], [ErrDepth] or
// [dict.ErrIndex], and carry a [token.Pos] in the original text which can
// be retrieved with errors.As and a *token.ScanErr.
//
// # Related Packages
//
//   - github.com/signadot/ndict/dict - The value tree
//   - github.com/signadot/ndict/encode - Encode a tree to text
//   - github.com/signadot/ndict/token - Scanning primitives
package parse
