package main

import (
	"fmt"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/eval"

	"github.com/scott-cotton/cli"
)

func ndEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	out := &outputter{cfg: cfg.MainConfig, w: cc.Out}
	if cfg.Expand {
		return eachDoc(cfg.MainConfig, cc, args, func(doc *dict.Node) error {
			if err := eval.ExpandEnv(doc, cfg.Env); err != nil {
				return err
			}
			return out.put(doc)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression or -expand", cli.ErrUsage)
	}
	expr := args[0]
	if cfg.Null {
		res, err := eval.Eval(expr, nil, cfg.Env)
		if err != nil {
			return err
		}
		return out.put(res)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *dict.Node) error {
		res, err := eval.Eval(expr, doc, cfg.Env)
		if err != nil {
			return err
		}
		return out.put(res)
	})
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := eval.SetEnv(env, a); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return 0, nil
	}
}
