package parse

import (
	"errors"

	"github.com/signadot/ndict/token"
)

var (
	ErrSyntax       = token.ErrSyntax
	ErrInvalidValue = errors.New("invalid value")
	ErrDepth        = errors.New("maximum depth exceeded")
	ErrYAML         = errors.New("yaml")
)
