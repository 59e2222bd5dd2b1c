package main

import (
	"fmt"

	"github.com/signadot/ndict/dict"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := dict.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	out := &outputter{cfg: cfg.MainConfig, w: cc.Out}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *dict.Node) error {
		res, err := doc.Lookup(path)
		if err != nil {
			return err
		}
		return out.put(res)
	})
}
