package ndict

import "errors"

var (
	ErrIO    = errors.New("i/o error")
	ErrPatch = errors.New("patch error")
)
