package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = errors.New("unterminated")
	ErrNumber       = errors.New("number")
)

// ScanErr attaches a document position to a scanning or decoding error.
type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func NewScanErr(e error, p *Pos) *ScanErr {
	return &ScanErr{Err: e, Pos: *p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("%w: expected %s", ErrSyntax, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("%w: unexpected %s", ErrSyntax, what), p)
}
