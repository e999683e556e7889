package confindent

import (
	"github.com/confindent/go-confindent/encode"
	"github.com/confindent/go-confindent/ir"
	"github.com/confindent/go-confindent/parse"
)

// Parse builds a document tree from d. See the parse package for
// options.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// MustParseString panics on parse failure; intended for fixtures and
// tests.
func MustParseString(s string, opts ...parse.ParseOption) *ir.Node {
	doc, err := parse.ParseString(s, opts...)
	if err != nil {
		panic(err)
	}
	return doc
}

// String renders a tree back to confindent text.
func String(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}
