package dict

import "errors"

var (
	ErrIndex        = errors.New("array index is out of bound")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrNotSet       = errors.New("value is not set")
	ErrNotFound     = errors.New("not found")
	ErrPath         = errors.New("invalid path")
	ErrUnsupported  = errors.New("unsupported value")
)
