package compose

import (
	"reflect"
	"slices"
)

// Composite is a runtime-synthesized stand-in for a mixed-in type. Member
// lookup walks the bases in order, so earlier bases shadow later ones.
type Composite struct {
	name  string
	bases []any
}

// New builds a Composite with the given generated name and ordered bases.
func New(name string, bases ...any) *Composite {
	return &Composite{name: name, bases: bases}
}

// Name returns the generated name of the composite.
func (c *Composite) Name() string { return c.name }

// Bases returns the ordered base values, mixins before the target.
func (c *Composite) Bases() []any { return slices.Clone(c.bases) }

// Lookup finds a member by name across the bases, earliest base winning.
// It resolves methods, exported struct fields, and string-keyed map
// entries.
func (c *Composite) Lookup(member string) (any, bool) {
	for _, base := range c.bases {
		if nested, ok := base.(*Composite); ok {
			if v, ok := nested.Lookup(member); ok {
				return v, true
			}
			continue
		}
		if v, ok := member1(base, member); ok {
			return v, true
		}
	}
	return nil, false
}

// member1 looks a member up on a single non-composite value.
func member1(v any, name string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		entry, ok := m[name]
		return entry, ok
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if method := rv.MethodByName(name); method.IsValid() {
		return method.Interface(), true
	}
	if rv.Kind() != reflect.Pointer {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if method := pv.MethodByName(name); method.IsValid() {
			return method.Interface(), true
		}
	}
	elem := rv
	if elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, false
		}
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		field := elem.FieldByName(name)
		if field.IsValid() && field.CanInterface() {
			return field.Interface(), true
		}
	}
	return nil, false
}
