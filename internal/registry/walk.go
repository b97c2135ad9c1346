package registry

import (
	"fmt"
	"reflect"
)

// attribute performs a single attribute step on a resolved value. Supported
// steps, in precedence order: string-keyed map entries, methods (value or
// pointer receiver), exported struct fields.
func attribute(v any, name string) (any, error) {
	if m, ok := v.(map[string]any); ok {
		if entry, ok := m[name]; ok {
			return entry, nil
		}
		return nil, fmt.Errorf("%w: map has no entry %q", ErrSymbolNotFound, name)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: cannot step %q into nil value", ErrSymbolNotFound, name)
	}

	if method := rv.MethodByName(name); method.IsValid() {
		return method.Interface(), nil
	}
	// Methods with a pointer receiver are not in a value's method set, so
	// retry against an addressable copy.
	if rv.Kind() != reflect.Pointer {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if method := pv.MethodByName(name); method.IsValid() {
			return method.Interface(), nil
		}
	}

	elem := rv
	if elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, fmt.Errorf("%w: cannot step %q into nil pointer", ErrSymbolNotFound, name)
		}
		elem = elem.Elem()
	}
	switch elem.Kind() {
	case reflect.Struct:
		field := elem.FieldByName(name)
		if field.IsValid() && field.CanInterface() {
			return field.Interface(), nil
		}
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			entry := elem.MapIndex(reflect.ValueOf(name).Convert(elem.Type().Key()))
			if entry.IsValid() {
				return entry.Interface(), nil
			}
			return nil, fmt.Errorf("%w: map has no entry %q", ErrSymbolNotFound, name)
		}
	}

	return nil, fmt.Errorf("%w: %q on value of type %T", ErrSymbolNotFound, name, v)
}
