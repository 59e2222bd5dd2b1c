// Package libdiff computes structural differences between trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// Apply the changes
//	patched, err := libdiff.Apply(oldNode, changes)
//
//	// or render them as an RFC 6902 JSON Patch
//	patch := libdiff.JSONPatch(changes)
//
// Changes apply in order: the path of each change addresses the document as
// left by the changes before it.  Array edits are computed with
// github.com/sergi/go-diff over element summaries, so that an inserted
// element does not turn every following element into a replacement.
//
// # Related Packages
//
//   - github.com/signadot/ndict/dict - The value tree and its paths
//   - github.com/signadot/ndict - Patch applies JSON Patch documents
package libdiff
