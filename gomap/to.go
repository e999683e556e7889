package gomap

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/confindent/go-confindent/ir"
)

// ToIR builds a node named name from the exported fields of v, which
// must be a struct or pointer to struct. Nil pointer fields are
// omitted.
func ToIR(name string, v any) (*ir.Node, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, &MarshalError{Message: "source value cannot be nil"}
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, &MarshalError{Message: "source must be a struct"}
	}
	node := ir.New(name)
	if err := toNode(node, val, ""); err != nil {
		return nil, err
	}
	return node, nil
}

func toNode(node *ir.Node, val reflect.Value, path string) error {
	t := val.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		fieldPath := joinPath(path, name)
		fv := val.Field(i)
		switch fv.Kind() {
		case reflect.Struct:
			child := node.NewChild(name)
			if err := toNode(child, fv, fieldPath); err != nil {
				return err
			}
		case reflect.Pointer:
			if fv.IsNil() {
				continue
			}
			switch fv.Type().Elem().Kind() {
			case reflect.Struct:
				child := node.NewChild(name)
				if err := toNode(child, fv.Elem(), fieldPath); err != nil {
					return err
				}
			case reflect.String:
				node.NewValuedChild(name, fv.Elem().String())
			default:
				return &MarshalError{Field: fieldPath,
					Message: "unsupported pointer target " + fv.Type().Elem().String()}
			}
		case reflect.Slice:
			parts := make([]string, fv.Len())
			for j := range fv.Len() {
				s, err := scalarString(fv.Index(j), fieldPath)
				if err != nil {
					return err
				}
				parts[j] = s
			}
			node.NewValuedChild(name, strings.Join(parts, ","))
		default:
			s, err := scalarString(fv, fieldPath)
			if err != nil {
				return err
			}
			node.NewValuedChild(name, s)
		}
	}
	return nil
}

func scalarString(fv reflect.Value, path string) (string, error) {
	switch fv.Kind() {
	case reflect.String:
		return fv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(fv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'g', -1, 64), nil
	default:
		return "", &MarshalError{Field: path,
			Message: "unsupported type " + fv.Type().String()}
	}
}
