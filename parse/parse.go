package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/token"
)

func Parse(d []byte, opts ...ParseOption) (*dict.Node, error) {
	pOpts := newOpts(opts)
	if pOpts.format == format.YAMLFormat {
		return parseYAML(d, pOpts)
	}
	buf, offs := token.TrimMap(string(d))
	p := &parser{
		buf:  buf,
		offs: offs,
		doc:  token.NewPosDoc(d),
		opts: pOpts,
	}
	res := pOpts.newNode()
	if err := p.document(res); err != nil {
		if debug.Parse() {
			debug.Logf("parse error: %v\n", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes (%d significant) into %s\n", len(d), len(buf), debug.Wire{Node: res})
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*dict.Node, error) {
	return Parse([]byte(s), opts...)
}

// parser decodes the trimmed form of a document.  All offsets are into buf;
// offs maps them back to the original text for error positions.
type parser struct {
	buf   string
	offs  []int
	doc   *token.PosDoc
	opts  *parseOpts
	depth int
}

func (p *parser) pos(i int) *token.Pos {
	if i < len(p.offs) {
		return p.doc.Pos(p.offs[i])
	}
	return p.doc.End()
}

func (p *parser) errAt(i int, err error) error {
	return token.NewScanErr(err, p.pos(i))
}

func (p *parser) trackPos(n *dict.Node, i int) {
	if p.opts.positions != nil {
		p.opts.positions[n] = p.pos(i)
	}
}

func (p *parser) document(res *dict.Node) error {
	if p.buf == "" {
		return p.errAt(0, fmt.Errorf("%w: empty document", ErrSyntax))
	}
	if p.buf[0] != '{' {
		return token.ExpectedErr("'{'", p.pos(0))
	}
	blk, err := token.Block(p.buf, 0)
	if err != nil {
		return p.errAt(0, err)
	}
	if len(blk) != len(p.buf) {
		return token.UnexpectedErr(fmt.Sprintf("%q after document", p.buf[len(blk):]), p.pos(len(blk)))
	}
	return p.object(res, 0, len(blk))
}

func (p *parser) enter(i int) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return p.errAt(i, fmt.Errorf("%w: %d", ErrDepth, p.opts.maxDepth))
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// object decodes buf[start:end], which holds a complete object block.
func (p *parser) object(n *dict.Node, start, end int) error {
	if err := p.enter(start); err != nil {
		return err
	}
	defer p.leave()
	p.trackPos(n, start)
	n.MakeObject()
	body := p.buf[:end-1]
	i := start + 1
	for i < len(body) {
		key, err := token.Quoted(body, i)
		if err != nil {
			return p.errAt(i, err)
		}
		i += len(key)
		if i >= len(body) || body[i] != ':' {
			return token.ExpectedErr("':' after key", p.pos(i))
		}
		i++
		vi := i
		var val string
		if i < len(body) {
			switch body[i] {
			case '"':
				val, err = token.Quoted(body, i)
			case '{', '[':
				val, err = token.Block(body, i)
			default:
				val = token.Unquoted(body, i)
			}
			if err != nil {
				return p.errAt(i, err)
			}
		}
		i += len(val)
		if i < len(body) {
			if body[i] != ',' {
				return token.ExpectedErr("',' after value", p.pos(i))
			}
			i++
		}
		child := n.Key(key[1 : len(key)-1])
		child.Clear()
		if err := p.value(child, vi, vi+len(val)); err != nil {
			return err
		}
	}
	return nil
}

// array decodes buf[start:end], which holds a complete array block.
func (p *parser) array(n *dict.Node, start, end int) error {
	if err := p.enter(start); err != nil {
		return err
	}
	defer p.leave()
	p.trackPos(n, start)
	n.MakeArray()
	elems := token.Split(p.buf[start+1 : end-1])
	if k := len(elems); k > 0 && elems[k-1] == "" {
		elems = elems[:k-1]
	}
	off := start + 1
	for i, e := range elems {
		c, err := n.Index(i)
		if err != nil {
			return p.errAt(off, err)
		}
		if err := p.value(c, off, off+len(e)); err != nil {
			return err
		}
		off += len(e) + 1
	}
	return nil
}

// value classifies buf[start:end] by its first byte and stores it in n.
func (p *parser) value(n *dict.Node, start, end int) error {
	v := p.buf[start:end]
	if v == "" {
		return p.errAt(start, fmt.Errorf("%w: missing value", ErrInvalidValue))
	}
	switch v[0] {
	case '{', '[':
		blk, err := token.Block(v, 0)
		if err != nil {
			return p.errAt(start, err)
		}
		if len(blk) != len(v) {
			return token.UnexpectedErr(fmt.Sprintf("%q after value", v[len(blk):]), p.pos(start+len(blk)))
		}
		if v[0] == '{' {
			return p.object(n, start, end)
		}
		return p.array(n, start, end)
	case '"':
		q, err := token.Quoted(v, 0)
		if err != nil {
			return p.errAt(start, err)
		}
		if len(q) != len(v) {
			return token.UnexpectedErr(fmt.Sprintf("%q after string", v[len(q):]), p.pos(start+len(q)))
		}
		p.trackPos(n, start)
		n.SetString(v[1 : len(v)-1])
		return nil
	}
	p.trackPos(n, start)
	if token.IsNumberStart(v) {
		isFloat, err := token.Number(v)
		if err != nil {
			return p.errAt(start, fmt.Errorf("%w: %w", ErrInvalidValue, err))
		}
		setNumber(n, v, isFloat)
		return nil
	}
	switch strings.ToUpper(v) {
	case "TRUE":
		n.SetBool(true)
	case "FALSE":
		n.SetBool(false)
	case "NULL":
		n.Clear()
	default:
		return p.errAt(start, fmt.Errorf("%w: %q", ErrInvalidValue, v))
	}
	return nil
}

// setNumber stores the canonical decimal text of v.  Numbers outside the
// range of int64 or float64 keep their original text.
func setNumber(n *dict.Node, v string, isFloat bool) {
	if !isFloat {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			n.SetNumber(v)
			return
		}
		n.SetInt(i)
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		n.SetNumber(v)
		return
	}
	n.SetFloat(f)
}
