package libdiff

import (
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to.  Numbers are compared by
// value.  A nil tree is treated as Null.
func Diff(from, to *dict.Node) []Change {
	if from == nil {
		from = dict.New()
	}
	if to == nil {
		to = dict.New()
	}
	var res []Change
	diff(nil, from, to, &res)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %d changes\n", debug.Wire{Node: from}, debug.Wire{Node: to}, len(res))
	}
	return res
}

func diff(path []dict.PathElem, from, to *dict.Node, res *[]Change) {
	if from.Kind != to.Kind {
		*res = append(*res, replace(path, from, to))
		return
	}
	switch from.Kind {
	case dict.ObjectKind:
		diffObject(path, from, to, res)
	case dict.ArrayKind:
		diffArray(path, from, to, res)
	case dict.NumberKind:
		if from.Raw != to.Raw && dict.Atof(from.Raw) != dict.Atof(to.Raw) {
			*res = append(*res, replace(path, from, to))
		}
	default:
		if from.Raw != to.Raw {
			*res = append(*res, replace(path, from, to))
		}
	}
}

func at(path []dict.PathElem, e dict.PathElem) []dict.PathElem {
	return append(slices.Clip(path), e)
}

func replace(path []dict.PathElem, from, to *dict.Node) Change {
	c := Change{Op: Replace, Path: path, From: from.Clone(), To: to.Clone()}
	if from.Kind == dict.StringKind && to.Kind == dict.StringKind {
		c.Edits = DiffString(from.Raw, to.Raw)
	}
	return c
}

// diffObject deletes the members missing from to, recurses on common members
// and then inserts the members new in to, in the order of to.
func diffObject(path []dict.PathElem, from, to *dict.Node, res *[]Change) {
	for k, fv := range from.All() {
		p := at(path, dict.PathElem{Key: k})
		tv := to.Get(k)
		if tv == nil {
			*res = append(*res, Change{Op: Delete, Path: p, From: fv.Clone()})
			continue
		}
		diff(p, fv, tv, res)
	}
	for k, tv := range to.All() {
		if from.Has(k) {
			continue
		}
		*res = append(*res, Change{Op: Insert, Path: at(path, dict.PathElem{Key: k}), To: tv.Clone()})
	}
}

// diffArray diffs the sequences of element summaries.  Equal containers are
// recursed into and a run of deletions followed by insertions is paired into
// replacements.
func diffArray(path []dict.PathElem, from, to *dict.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	// k is the index in the array as edited so far
	fi, ti, k := 0, 0, 0
	var dels []*dict.Node
	elem := func(i int) []dict.PathElem {
		return at(path, dict.PathElem{Index: i, IsIndex: true})
	}
	flush := func() {
		for _, d := range dels {
			*res = append(*res, Change{Op: Delete, Path: elem(k), From: d.Clone()})
		}
		dels = nil
	}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, from.At(fi))
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				tv := to.At(ti)
				if len(dels) > 0 {
					*res = append(*res, replace(elem(k), dels[0], tv))
					dels = dels[1:]
				} else {
					*res = append(*res, Change{Op: Insert, Path: elem(k), To: tv.Clone()})
				}
				ti++
				k++
			}
		case diffpatch.DiffEqual:
			flush()
			for range n {
				diff(elem(k), from.At(fi), to.At(ti), res)
				fi++
				ti++
				k++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, node *dict.Node) []rune {
	rs := make([]rune, node.Count())
	for i := range rs {
		sum := summaryStr(node.At(i))
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr identifies containers by kind only, so that they are diffed
// recursively, and scalars by kind and value.
func summaryStr(node *dict.Node) string {
	switch node.Kind {
	case dict.ObjectKind, dict.ArrayKind, dict.NullKind:
		return node.Kind.String()
	case dict.NumberKind:
		return node.Kind.String() + "-" + strconv.FormatFloat(dict.Atof(node.Raw), 'g', -1, 64)
	case dict.StringKind:
		if strings.Contains(node.Raw, "\n") {
			return node.Kind.String() + "/m"
		}
		return node.Kind.String() + "-" + node.Raw
	default:
		return node.Kind.String() + "-" + node.Raw
	}
}
