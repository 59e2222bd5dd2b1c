package eval

import "errors"

var (
	ErrEval = errors.New("eval error")
	ErrEnv  = errors.New("env error")
)
