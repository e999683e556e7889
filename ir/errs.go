package ir

import (
	"errors"
	"fmt"
)

var (
	ErrMissingValue = errors.New("node has no value")
	ErrMissingChild = errors.New("no child with name")
	ErrConversion   = errors.New("value conversion")
)

// ConversionErr reports a present value that failed to parse as the
// requested type. It unwraps to both ErrConversion and the parse cause.
type ConversionErr struct {
	Name string
	Raw  string
	Want string
	Err  error
}

func (e *ConversionErr) Error() string {
	return fmt.Sprintf("%s: %q on %q as %s: %v", ErrConversion, e.Raw, e.Name, e.Want, e.Err)
}

func (e *ConversionErr) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

func convErr(n *Node, raw, want string, err error) error {
	return &ConversionErr{Name: n.Name, Raw: raw, Want: want, Err: err}
}
