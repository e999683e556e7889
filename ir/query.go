package ir

import "iter"

// Lookups are linear scans over the ordered child sequence. Trees in
// this format are small; no name index is built.

// Child returns the first child named name in document order, or nil.
// Matching is exact and case-sensitive.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Named returns every child named name, in document order. When
// nothing matches the result is an empty, non-nil slice.
func (n *Node) Named(name string) []*Node {
	res := []*Node{}
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// All returns a restartable sequence over the direct children of n.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Children {
			if !yield(c) {
				return
			}
		}
	}
}

// HasChild reports whether any child is named name.
func (n *Node) HasChild(name string) bool {
	return n.Child(name) != nil
}
