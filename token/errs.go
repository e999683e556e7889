package token

import "errors"

var (
	ErrIndent   = errors.New("inconsistent indentation")
	ErrEncoding = errors.New("invalid utf-8")

	ErrUnterminated   = errors.New("unterminated quoted string")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode escape")
	ErrUnicodeControl = errors.New("unescaped control character")
	ErrTrailing       = errors.New("unexpected text after quoted string")
)
