package eval

import (
	"errors"
	"os"

	"github.com/signadot/ndict/dict"

	"github.com/expr-lang/expr"
)

func exprOpts(root *dict.Node, where string) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return where, nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := root.Lookup(path)
			if err != nil {
				return nil, err
			}
			return res.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := root.Lookup(params[0].(string))
			if errors.Is(err, dict.ErrNotFound) {
				return false, nil
			}
			return err == nil, err
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
