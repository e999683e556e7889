package parse

import (
	"github.com/confindent/go-confindent/ir"
	"github.com/confindent/go-confindent/token"
)

type parseOpts struct {
	marker    string
	unit      string
	positions map[*ir.Node]*token.Pos
}

func (o *parseOpts) ClassifyOpts() []token.Opt {
	res := []token.Opt{}
	if o.marker != "" {
		res = append(res, token.Marker(o.marker))
	}
	if o.unit != "" {
		res = append(res, token.Unit(o.unit))
	}
	return res
}

type ParseOption func(*parseOpts)

// CommentMarker overrides the comment marker, "#" by default.
func CommentMarker(m string) ParseOption {
	return func(o *parseOpts) { o.marker = m }
}

// Unit fixes the indentation unit instead of learning it from the
// first indented line.
func Unit(u string) ParseOption {
	return func(o *parseOpts) { o.unit = u }
}

// ParsePositions records the source position of every parsed node into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
