package main

import (
	"fmt"

	"github.com/signadot/ndict"
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	m, err := getMatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	opts := []ndict.MatchOpt{ndict.MatchGlobs(cfg.Globs), ndict.MatchKinds(cfg.Kinds)}
	out := &outputter{cfg: cfg.MainConfig, w: cc.Out}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *dict.Node) error {
		ok, err := ndict.Match(doc, m, opts...)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if cfg.Trim {
			doc = ndict.Trim(m, doc)
		}
		return out.put(doc)
	})
}

func getMatch(cfg *MatchConfig, cc *cli.Context, arg string) (*dict.Node, error) {
	if cfg.File {
		res, err := getObjFile(cc, arg, cfg.parseOpts(arg)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding match: %w", err)
		}
		return res, nil
	}
	res, err := parse.ParseString(arg, cfg.parseOpts("")...)
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding match: %w", cli.ErrUsage, err)
	}
	return res, nil
}
