package model

import (
	"fmt"
	"reflect"
	"strings"
)

// Lookup returns a model that resolves a dotted path against the render
// target and renders the value it finds. Maps keyed by string and exported
// struct fields are traversed; pointers are dereferenced along the way. A
// missing segment is a render error.
func Lookup(path string) TextModel {
	segments := strings.Split(path, ".")
	return ModelFunc(func(target any) (string, error) {
		value := target
		for _, segment := range segments {
			next, ok := lookupSegment(value, segment)
			if !ok {
				return "", fmt.Errorf("model: target has no value at %q", path)
			}
			value = next
		}
		return formatValue(value), nil
	})
}

func lookupSegment(target any, segment string) (any, bool) {
	switch v := target.(type) {
	case nil:
		return nil, false
	case map[string]any:
		value, ok := v[segment]
		return value, ok
	case map[string]string:
		value, ok := v[segment]
		return value, ok
	}

	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		value := rv.MapIndex(reflect.ValueOf(segment))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Struct:
		field := rv.FieldByName(segment)
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true
	default:
		return nil, false
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
