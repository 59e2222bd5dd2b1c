// Package eval evaluates expr-lang expressions against a tree.
//
// Eval runs a single expression with the members of a document and an
// environment in scope.  ExpandEnv rewrites the strings of a tree in place,
// replacing each $[expr] with the text of its value.  A string which is
// entirely .[expr] is replaced by the value itself, which may be an object
// or an array.
//
// Expressions may call
//
//	getpath(path)  the value at path in the document, see dict.ParsePath
//	haspath(path)  whether path exists in the document
//	whereami()     the path of the string being expanded
//	getenv(name)   the value of an OS environment variable
package eval
