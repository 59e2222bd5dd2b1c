package main

import (
	"fmt"

	"github.com/signadot/ndict"
	"github.com/signadot/ndict/dict"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	out := &outputter{cfg: cfg.MainConfig, w: cc.Out}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *dict.Node) error {
		var res *dict.Node
		if cfg.Merge {
			res, err = ndict.MergePatch(doc, p)
		} else {
			res, err = ndict.Patch(doc, p)
		}
		if err != nil {
			return err
		}
		return out.put(res)
	})
}

// getPatch returns the patch text, which is the argument itself unless -f
// names a file.  Patches are passed through as JSON.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !cfg.File {
		return []byte(arg), nil
	}
	d, err := readFile(cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
