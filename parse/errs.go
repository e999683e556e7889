package parse

import (
	"fmt"

	"github.com/confindent/go-confindent/token"
)

// ParseErr carries the position of a structural parse failure.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func NewParseErr(err error, p *token.Pos) *ParseErr {
	return &ParseErr{Err: err, Pos: *p}
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
