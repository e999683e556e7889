package gomap

import (
	"reflect"

	"github.com/confindent/go-confindent/ir"
)

// FromIR fills the struct pointed to by v from node's children. Fields
// without a matching child keep their zero value.
func FromIR(node *ir.Node, v any) error {
	if node == nil {
		return &UnmarshalError{Message: "source node cannot be nil"}
	}
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return &UnmarshalError{Message: "destination must point to a struct"}
	}
	return fromNode(node, elem, "")
}

func fromNode(node *ir.Node, val reflect.Value, path string) error {
	t := val.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		fieldPath := joinPath(path, name)
		child := node.Child(name)
		if child == nil {
			continue
		}
		if err := setField(child, val.Field(i), fieldPath); err != nil {
			return err
		}
	}
	return nil
}

func setField(child *ir.Node, fv reflect.Value, path string) error {
	switch fv.Kind() {
	case reflect.Struct:
		return fromNode(child, fv, path)
	case reflect.Pointer:
		elemT := fv.Type().Elem()
		switch elemT.Kind() {
		case reflect.Struct:
			p := reflect.New(elemT)
			if err := fromNode(child, p.Elem(), path); err != nil {
				return err
			}
			fv.Set(p)
			return nil
		case reflect.String:
			// optional scalar: present child without a value stays nil
			if !child.HasValue() {
				return nil
			}
			s, err := child.Str()
			if err != nil {
				return &UnmarshalError{Field: path, Err: err}
			}
			p := reflect.New(elemT)
			p.Elem().SetString(s)
			fv.Set(p)
			return nil
		default:
			return &UnmarshalError{Field: path,
				Message: "unsupported pointer target " + elemT.String()}
		}
	case reflect.Slice:
		parts, err := child.List()
		if err != nil {
			return &UnmarshalError{Field: path, Err: err}
		}
		res := reflect.MakeSlice(fv.Type(), len(parts), len(parts))
		for i, part := range parts {
			elem := ir.NewValued(child.Name, part)
			if err := setScalar(elem, res.Index(i), path); err != nil {
				return err
			}
		}
		fv.Set(res)
		return nil
	default:
		return setScalar(child, fv, path)
	}
}

func setScalar(child *ir.Node, fv reflect.Value, path string) error {
	switch fv.Kind() {
	case reflect.String:
		s, err := child.Str()
		if err != nil {
			return &UnmarshalError{Field: path, Err: err}
		}
		fv.SetString(s)
	case reflect.Bool:
		b, err := child.Bool()
		if err != nil {
			return &UnmarshalError{Field: path, Err: err}
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := child.Int()
		if err != nil {
			return &UnmarshalError{Field: path, Err: err}
		}
		if fv.OverflowInt(i) {
			return &UnmarshalError{Field: path, Message: "integer overflow"}
		}
		fv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := child.Uint()
		if err != nil {
			return &UnmarshalError{Field: path, Err: err}
		}
		if fv.OverflowUint(u) {
			return &UnmarshalError{Field: path, Message: "integer overflow"}
		}
		fv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := child.Float()
		if err != nil {
			return &UnmarshalError{Field: path, Err: err}
		}
		fv.SetFloat(f)
	default:
		return &UnmarshalError{Field: path,
			Message: "unsupported type " + fv.Type().String()}
	}
	return nil
}

func fieldName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}
	tag := sf.Tag.Get("conf")
	switch tag {
	case "":
		return sf.Name, true
	case "-":
		return "", false
	default:
		return tag, true
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
