package ir

import "encoding/json"

// The IR is self-describing: a tree serializes to the shape
// {"name": ..., "value": ..., "children": [...]}, with value omitted
// entirely when absent. Parent links are rebuilt on decode.

type irBase struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Value    *string `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&irBase{
		Name:     n.Name,
		Value:    n.Value,
		Children: n.Children,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Name = tmp.Name
	n.Value = tmp.Value
	n.Children = tmp.Children
	n.relink()
	return nil
}

func (n *Node) relink() {
	for i, c := range n.Children {
		c.Parent = n
		c.ParentIndex = i
	}
}

func ToJSON(n *Node) ([]byte, error) {
	return json.Marshal(n)
}

func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
