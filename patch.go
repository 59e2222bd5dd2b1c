package ndict

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/parse"
)

// Patch applies an RFC 6902 JSON Patch to a copy of doc.  Object members of
// the result are in sorted key order.
func Patch(doc *dict.Node, patch []byte) (*dict.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops on %s\n", len(ops), debug.Wire{Node: doc})
	}
	d, err := wire(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return reparse(doc, out)
}

// MergePatch applies an RFC 7386 JSON Merge Patch to a copy of doc.  Unlike
// Merge, null members of the patch delete members of doc.
func MergePatch(doc *dict.Node, patch []byte) (*dict.Node, error) {
	d, err := wire(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", string(patch), debug.Wire{Node: doc})
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return reparse(doc, out)
}

// CreateMergePatch returns the RFC 7386 merge patch that turns from into to.
func CreateMergePatch(from, to *dict.Node) ([]byte, error) {
	a, err := wire(from)
	if err != nil {
		return nil, err
	}
	b, err := wire(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func wire(n *dict.Node) ([]byte, error) {
	if n == nil {
		n = dict.New()
	}
	s, err := encode.String(n, encode.EncodeWire(true))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// reparse decodes a patch result with the settings of the original doc.
func reparse(doc *dict.Node, d []byte) (*dict.Node, error) {
	opts := []parse.ParseOption{}
	if doc != nil {
		opts = append(opts, parse.ParseMode(doc.Mode()), parse.ParseMaxIndex(doc.MaxIndex()))
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	restoreRaw(doc, res)
	return res, nil
}

// restoreRaw undoes the re-encoding of strings by the patch round trip.
// Strings of res whose value equals the string at the same place in orig
// get back the text of orig; other strings lose the HTML escapes that
// encoding/json adds for '<', '>' and '&'.
func restoreRaw(orig, res *dict.Node) {
	switch res.Kind {
	case dict.ObjectKind:
		for k, v := range res.All() {
			var o *dict.Node
			if orig != nil && orig.Kind == dict.ObjectKind {
				o = orig.Get(k)
			}
			restoreRaw(o, v)
		}
	case dict.ArrayKind:
		for i := 0; i < res.Count(); i++ {
			var o *dict.Node
			if orig != nil && orig.Kind == dict.ArrayKind {
				o = orig.At(i)
			}
			restoreRaw(o, res.At(i))
		}
	case dict.StringKind:
		if orig != nil && orig.Kind == dict.StringKind && sameString(orig.Raw, res.Raw) {
			res.SetString(orig.Raw)
			return
		}
		res.SetString(unescapeHTML(res.Raw))
	}
}

// sameString reports whether the verbatim string texts a and b denote the
// same string.
func sameString(a, b string) bool {
	if a == b {
		return true
	}
	var x, y string
	if json.Unmarshal([]byte(`"`+a+`"`), &x) != nil {
		return false
	}
	if json.Unmarshal([]byte(`"`+b+`"`), &y) != nil {
		return false
	}
	return x == y
}

// unescapeHTML replaces the escapes \u003c, \u003e and \u0026 in the
// verbatim string text v by the characters they stand for.
func unescapeHTML(v string) string {
	if !strings.Contains(v, `\u00`) {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i+1 >= len(v) {
			b.WriteByte(v[i])
			continue
		}
		if v[i+1] == 'u' && i+6 <= len(v) {
			if r, err := strconv.ParseUint(v[i+2:i+6], 16, 32); err == nil && (r == '<' || r == '>' || r == '&') {
				b.WriteByte(byte(r))
				i += 5
				continue
			}
		}
		b.WriteString(v[i : i+2])
		i++
	}
	return b.String()
}
