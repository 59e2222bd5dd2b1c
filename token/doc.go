// Package token provides the scanning primitives of the JSON decoder.
//
// There is no separate lexer pass.  [Trim] compacts a document by removing
// unquoted white space, and the decoder then slices syntactic units directly
// out of the compacted buffer:
//
//   - [Quoted] extracts a double quoted string, closing quote included.
//   - [Unquoted] extracts a bare scalar token such as a number or keyword.
//   - [Block] extracts a bracket delimited object or array.
//   - [Split] splits the inside of an array at its top level commas.
//
// All of them are pure functions over a buffer and an offset.  [TrimMap]
// additionally records where each kept byte came from so that errors can be
// reported as a [Pos] in the original text.
package token
