package ir

import "github.com/goccy/go-yaml"

// yamlNode mirrors the JSON interop shape without the parent links, so
// the marshaler never walks a cycle.
type yamlNode struct {
	Name     string      `yaml:"name,omitempty"`
	Value    *string     `yaml:"value,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

func toYAMLNode(n *Node) *yamlNode {
	res := &yamlNode{
		Name:  n.Name,
		Value: n.Value,
	}
	if len(n.Children) > 0 {
		res.Children = make([]*yamlNode, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = toYAMLNode(c)
		}
	}
	return res
}

func fromYAMLNode(y *yamlNode, parent *Node, idx int) *Node {
	res := &Node{
		Parent:      parent,
		ParentIndex: idx,
		Name:        y.Name,
		Value:       y.Value,
	}
	if len(y.Children) > 0 {
		res.Children = make([]*Node, len(y.Children))
		for i, c := range y.Children {
			res.Children[i] = fromYAMLNode(c, res, i)
		}
	}
	return res
}

// ToYAML serializes the IR itself to YAML, in the same self-describing
// shape as ToJSON.
func ToYAML(n *Node) ([]byte, error) {
	return yaml.Marshal(toYAMLNode(n))
}

// FromYAML decodes a tree serialized by ToYAML.
func FromYAML(d []byte) (*Node, error) {
	tmp := &yamlNode{}
	if err := yaml.Unmarshal(d, tmp); err != nil {
		return nil, err
	}
	return fromYAMLNode(tmp, nil, 0), nil
}
