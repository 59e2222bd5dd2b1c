package main

import (
	"fmt"

	"github.com/signadot/ndict"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a base and at least one overlay", cli.ErrUsage)
	}
	res, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, file := range args[1:] {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		res, err = ndict.Merge(string(d), res, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
		if cfg.Verbose {
			theLog.Info("merged", "file", file, "members", res.Count())
		}
	}
	out := &outputter{cfg: cfg.MainConfig, w: cc.Out}
	return out.put(res)
}
