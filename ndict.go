package ndict

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/parse"
)

// Decode parses a JSON document, which must be an object.
func Decode(text string, opts ...parse.ParseOption) (*dict.Node, error) {
	return parse.ParseString(text, opts...)
}

// Encode renders tree as pretty printed JSON with indent spaces per level.
// A nil tree encodes like an empty one.
func Encode(tree *dict.Node, indent int) string {
	if tree == nil {
		tree = dict.New()
	}
	return encode.MustString(tree, encode.EncodeIndent(indent))
}

// Merge decodes text and merges it over a copy of base, which is left
// unchanged.  The result carries the settings of base.
func Merge(text string, base *dict.Node, opts ...parse.ParseOption) (*dict.Node, error) {
	src, err := Decode(text, opts...)
	if err != nil {
		return nil, err
	}
	res := dict.New()
	if base != nil {
		res = base.Clone()
	}
	if debug.Merge() {
		debug.Logf("merge %s over %s\n", debug.Wire{Node: src}, debug.Wire{Node: res})
	}
	res.Merge(src)
	return res, nil
}

// Read decodes the file at path.  Files ending in .yaml or .yml are read as
// YAML unless opts select a format.
func Read(path string, opts ...parse.ParseOption) (*dict.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open input file: %w", ErrIO, err)
	}
	opts = append([]parse.ParseOption{parse.ParseFormat(format.FromExt(filepath.Ext(path)))}, opts...)
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
