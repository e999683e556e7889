// Package parse provides confindent parsing support.
package parse

import (
	"errors"
	"fmt"

	"github.com/confindent/go-confindent/ir"
	"github.com/confindent/go-confindent/token"
)

// ErrStructure reports a content line whose depth is not reachable from
// the current ancestor chain, e.g. a jump from depth 0 to depth 2.
var ErrStructure = errors.New("unreachable nesting depth")

type frame struct {
	depth int
	node  *ir.Node
}

// Parse builds a document tree from d. The returned node is the
// document root; its direct children are the top-level sections.
// On error no partial tree is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	cl, err := token.NewClassifier(d, pOpts.ClassifyOpts()...)
	if err != nil {
		return nil, err
	}
	root := ir.NewDocument()
	stack := []frame{{depth: -1, node: root}}
	for {
		ln, err := cl.Next()
		if err != nil {
			return nil, err
		}
		if ln == nil {
			return root, nil
		}
		if ln.Type != token.LineContent {
			continue
		}
		for stack[len(stack)-1].depth >= ln.Depth {
			stack = stack[:len(stack)-1]
		}
		top := &stack[len(stack)-1]
		if top.depth != ln.Depth-1 {
			e := fmt.Errorf("%w: depth %d under depth %d",
				ErrStructure, ln.Depth, top.depth)
			return nil, NewParseErr(e, ln.Pos)
		}
		node := &ir.Node{Name: ln.Key, Value: ln.Value}
		top.node.Append(node)
		trackPos(node, ln.Pos, pOpts)
		stack = append(stack, frame{depth: ln.Depth, node: node})
	}
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}
