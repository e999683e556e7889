package ir

// Node is one named entry in a configuration tree: a name, an optional
// scalar value, and an ordered list of children. A nil Value means the
// source line had nothing after its key, which is distinct from an
// empty value.
type Node struct {
	Parent      *Node
	ParentIndex int

	Name     string
	Value    *string
	Children []*Node
}

// NewDocument returns an empty document root: a node with no name, no
// value and no parent.
func NewDocument() *Node {
	return &Node{}
}

func New(name string) *Node {
	return &Node{Name: name}
}

func NewValued(name, value string) *Node {
	return &Node{Name: name, Value: &value}
}

// IsDocument reports whether n is a document root.
func (n *Node) IsDocument() bool {
	return n.Parent == nil && n.Name == ""
}

// Append adds c as the last child of n.
func (n *Node) Append(c *Node) *Node {
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
	return n
}

// NewChild appends a valueless child and returns it.
func (n *Node) NewChild(name string) *Node {
	c := New(name)
	n.Append(c)
	return c
}

// NewValuedChild appends a child with a value and returns it.
func (n *Node) NewValuedChild(name, value string) *Node {
	c := NewValued(name, value)
	n.Append(c)
	return c
}

func (n *Node) SetValue(v string) *Node {
	n.Value = &v
	return n
}

func (n *Node) ClearValue() *Node {
	n.Value = nil
	return n
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Depth is the nesting depth of n; a document root has depth -1 so its
// top-level children sit at depth 0.
func (n *Node) Depth() int {
	d := 0
	p := n
	for p.Parent != nil {
		p = p.Parent
		d++
	}
	if p.IsDocument() {
		return d - 1
	}
	return d
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Name = n.Name
	if n.Value != nil {
		v := *n.Value
		dst.Value = &v
	} else {
		dst.Value = nil
	}
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dstC := &Node{}
		c.CloneTo(dstC)
		dstC.Parent = dst
		dstC.ParentIndex = i
		dst.Children[i] = dstC
	}
	return dst
}

// Visit walks the subtree rooted at n, calling f before (isPost=false)
// and after (isPost=true) each node's children. Returning false from
// the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
