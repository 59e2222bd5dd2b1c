package main

import (
	"github.com/signadot/ndict/dict"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	out := &outputter{cfg: cfg.MainConfig, w: cc.Out}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *dict.Node) error {
		return out.put(doc)
	})
}
