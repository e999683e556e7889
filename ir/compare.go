package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes by name, then value
// (absent sorts before present), then children pairwise. The result
// will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch {
	case a.Value == nil && b.Value != nil:
		return -1
	case a.Value != nil && b.Value == nil:
		return 1
	case a.Value != nil:
		if c := strings.Compare(*a.Value, *b.Value); c != 0 {
			return c
		}
	}
	for i := range min(len(a.Children), len(b.Children)) {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Children), len(b.Children))
}

// Equal reports whether two trees have identical names, values and
// child order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
