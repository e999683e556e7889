package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// HasValue reports whether the node carries a scalar value.
func (n *Node) HasValue() bool {
	return n.Value != nil
}

// Str returns the raw scalar value, or ErrMissingValue when absent.
func (n *Node) Str() (string, error) {
	if n.Value == nil {
		return "", fmt.Errorf("%w: %q", ErrMissingValue, n.Name)
	}
	return *n.Value, nil
}

func (n *Node) Int() (int64, error) {
	raw, err := n.Str()
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, convErr(n, raw, "int", err)
	}
	return i, nil
}

func (n *Node) Uint() (uint64, error) {
	raw, err := n.Str()
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, convErr(n, raw, "uint", err)
	}
	return u, nil
}

func (n *Node) Float() (float64, error) {
	raw, err := n.Str()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, convErr(n, raw, "float", err)
	}
	return f, nil
}

func (n *Node) Bool() (bool, error) {
	raw, err := n.Str()
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, convErr(n, raw, "bool", err)
	}
	return b, nil
}

// List splits the value on commas, trimming each element.
func (n *Node) List() ([]string, error) {
	raw, err := n.Str()
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}

// Scalar enumerates the primitive types a value converts to.
type Scalar interface {
	~string | ~int64 | ~uint64 | ~float64 | ~bool
}

// As converts the node's value to T, dispatching to the per-type
// accessor.
func As[T Scalar](n *Node) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p, err = n.Str()
	case *int64:
		*p, err = n.Int()
	case *uint64:
		*p, err = n.Uint()
	case *float64:
		*p, err = n.Float()
	case *bool:
		*p, err = n.Bool()
	default:
		err = convErr(n, "", fmt.Sprintf("%T", out), fmt.Errorf("unsupported target"))
	}
	return out, err
}

// ListOf converts a comma-separated value to a slice of T.
func ListOf[T Scalar](n *Node) ([]T, error) {
	parts, err := n.List()
	if err != nil {
		return nil, err
	}
	res := make([]T, len(parts))
	for i, p := range parts {
		res[i], err = As[T](NewValued(n.Name, p))
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (n *Node) child(name string) (*Node, error) {
	c := n.Child(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %q under %q", ErrMissingChild, name, n.Name)
	}
	return c, nil
}

// ChildStr is Child followed by Str; it fails with ErrMissingChild when
// no child matches.
func (n *Node) ChildStr(name string) (string, error) {
	c, err := n.child(name)
	if err != nil {
		return "", err
	}
	return c.Str()
}

func (n *Node) ChildInt(name string) (int64, error) {
	c, err := n.child(name)
	if err != nil {
		return 0, err
	}
	return c.Int()
}

func (n *Node) ChildUint(name string) (uint64, error) {
	c, err := n.child(name)
	if err != nil {
		return 0, err
	}
	return c.Uint()
}

func (n *Node) ChildFloat(name string) (float64, error) {
	c, err := n.child(name)
	if err != nil {
		return 0, err
	}
	return c.Float()
}

func (n *Node) ChildBool(name string) (bool, error) {
	c, err := n.child(name)
	if err != nil {
		return false, err
	}
	return c.Bool()
}

func (n *Node) ChildList(name string) ([]string, error) {
	c, err := n.child(name)
	if err != nil {
		return nil, err
	}
	return c.List()
}

// ChildAs composes Child and As.
func ChildAs[T Scalar](n *Node, name string) (T, error) {
	c, err := n.child(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return As[T](c)
}
