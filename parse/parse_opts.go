package parse

import (
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/token"
)

// DefaultMaxDepth is the deepest nesting of objects and arrays accepted
// unless ParseMaxDepth says otherwise.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format    format.Format
	mode      dict.Mode
	maxIndex  int
	maxDepth  int
	positions map[*dict.Node]*token.Pos
}

func (o *parseOpts) newNode() *dict.Node {
	return dict.New(dict.WithMode(o.mode), dict.MaxIndex(o.maxIndex))
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMode sets the accessor mode of the resulting tree.
func ParseMode(m dict.Mode) ParseOption {
	return func(o *parseOpts) { o.mode = m }
}

// ParseMaxIndex sets the largest array index of the resulting tree.  Arrays
// with more elements fail to decode with dict.ErrIndex.
func ParseMaxIndex(i int) ParseOption {
	return func(o *parseOpts) { o.maxIndex = i }
}

func ParseMaxDepth(d int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = d }
}

// ParsePositions records in m the position of the first byte of every
// decoded value.  Only JSON input records positions.
func ParsePositions(m map[*dict.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{
		format:   format.JSONFormat,
		maxIndex: -1,
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
