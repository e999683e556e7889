package encode

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/confindent/go-confindent/ir"
	"github.com/confindent/go-confindent/token"
)

type EncState struct {
	depth  int
	indent string

	Color func(ColorAttr, string) string
}

// Encode writes node to w, one `key value` line per node, nesting
// encoded by indentation. A document root contributes no line of its
// own. Names and values that would not survive reclassification are
// double-quoted.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent == "" || strings.TrimFunc(es.indent, unicode.IsSpace) != "" {
		return fmt.Errorf("indent %q is not whitespace", es.indent)
	}
	if node.IsDocument() {
		for _, c := range node.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	line := strings.Repeat(es.indent, es.depth)
	line += es.color(NameColor, maybeQuote(n.Name))
	if n.Value != nil {
		line += " " + es.color(ValueColor, maybeQuote(*n.Value))
	}
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range n.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return nil
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func maybeQuote(v string) string {
	if token.NeedsQuote(v) {
		return token.Quote(v)
	}
	return v
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
