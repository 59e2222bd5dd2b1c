package ndict

import (
	"path/filepath"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"
)

type MatchConfig struct {
	Kinds bool
	Globs bool
}

type MatchOpt func(*MatchConfig)

// MatchKinds makes scalars of the pattern match any scalar of the same kind.
func MatchKinds(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Kinds = v }
}

// MatchGlobs makes string scalars of the pattern match as filepath.Match
// patterns.
func MatchGlobs(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Globs = v }
}

// Match reports whether doc matches the pattern match.  An object matches
// when every member of the pattern is present in doc and matches; extra
// members of doc are ignored.  Arrays match element by element and must
// have the same length.  A Null pattern matches anything.  Numbers are
// compared by value.
func Match(doc, match *dict.Node, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return doMatch(doc, match, cfg)
}

func doMatch(doc, match *dict.Node, cfg *MatchConfig) (bool, error) {
	if match == nil || match.Kind == dict.NullKind {
		return true, nil
	}
	if doc == nil {
		return false, nil
	}
	if debug.Match() {
		debug.Logf("match %s %s against %s\n", match.Kind, debug.Wire{Node: match}, debug.Wire{Node: doc})
	}
	if doc.Kind != match.Kind {
		return false, nil
	}
	switch match.Kind {
	case dict.ObjectKind:
		for k, m := range match.All() {
			ok, err := doMatch(doc.Get(k), m, cfg)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case dict.ArrayKind:
		if doc.Count() != match.Count() {
			return false, nil
		}
		for i := 0; i < match.Count(); i++ {
			ok, err := doMatch(doc.At(i), match.At(i), cfg)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
	if cfg.Kinds {
		return true, nil
	}
	switch match.Kind {
	case dict.StringKind:
		if cfg.Globs {
			return filepath.Match(match.Raw, doc.Raw)
		}
		return doc.Raw == match.Raw, nil
	case dict.NumberKind:
		return doc.Raw == match.Raw || dict.Atof(doc.Raw) == dict.Atof(match.Raw), nil
	default:
		return doc.Raw == match.Raw, nil
	}
}

// Trim returns a copy of doc holding only the members named by the pattern
// match, recursively.
func Trim(match, doc *dict.Node) *dict.Node {
	if doc == nil {
		return nil
	}
	if match == nil {
		return doc.Clone()
	}
	switch {
	case match.Kind == dict.ObjectKind && doc.Kind == dict.ObjectKind:
		res := doc.Clone()
		res.Clear()
		res.MakeObject()
		for k, v := range doc.All() {
			m := match.Get(k)
			if m == nil {
				continue
			}
			Trim(m, v).CloneTo(res.Key(k))
		}
		return res
	case match.Kind == dict.ArrayKind && doc.Kind == dict.ArrayKind:
		res := doc.Clone()
		res.Clear()
		res.MakeArray()
		for i := 0; i < doc.Count(); i++ {
			m := match.At(i)
			if m == nil {
				break
			}
			Trim(m, doc.At(i)).CloneTo(res.MustIndex(i))
		}
		return res
	default:
		return doc.Clone()
	}
}
