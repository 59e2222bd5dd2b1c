package eval

import (
	"fmt"
	"maps"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DocName is the variable holding the whole document.
const DocName = "doc"

// Eval evaluates input with the top level members of doc, the entries of env
// and the document itself as DocName in scope.  Entries of env shadow members
// of doc.
func Eval(input string, doc *dict.Node, env Env) (*dict.Node, error) {
	if doc == nil {
		doc = dict.New()
	}
	val, err := run(input, doc, "", scope(doc, env))
	if err != nil {
		return nil, err
	}
	res := dict.New(dict.WithMode(doc.Mode()), dict.MaxIndex(doc.MaxIndex()))
	if err := res.Set(val); err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, input, err)
	}
	return res, nil
}

func scope(doc *dict.Node, env Env) Env {
	res := Env{}
	if doc.Kind == dict.ObjectKind {
		if m, ok := doc.ToAny().(map[string]any); ok {
			maps.Copy(res, m)
		}
	}
	maps.Copy(res, env)
	res[DocName] = doc.ToAny()
	return res
}

func run(input string, root *dict.Node, where string, env Env) (any, error) {
	program, err := expr.Compile(input, exprOpts(root, where)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, input, err)
	}
	val, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, input, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, val)
	}
	return val, nil
}
