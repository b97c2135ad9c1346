package compose

import "reflect"

// Ancestors returns the ancestor chain of a value: its own type followed by
// the types it transitively embeds, in discovery order without duplicates.
// For a Composite the chain is the ordered union of its bases' chains.
func Ancestors(v any) []reflect.Type {
	var out []reflect.Type
	seen := make(map[reflect.Type]struct{})
	appendAncestors(v, seen, &out)
	return out
}

func appendAncestors(v any, seen map[reflect.Type]struct{}, out *[]reflect.Type) {
	if c, ok := v.(*Composite); ok {
		for _, base := range c.bases {
			appendAncestors(base, seen, out)
		}
		return
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	appendTypeChain(t, seen, out)
}

// appendTypeChain walks a type and its embedded fields breadth-first.
func appendTypeChain(t reflect.Type, seen map[reflect.Type]struct{}, out *[]reflect.Type) {
	queue := []reflect.Type{t}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr.Kind() == reflect.Pointer {
			curr = curr.Elem()
		}
		if _, dup := seen[curr]; dup {
			continue
		}
		seen[curr] = struct{}{}
		*out = append(*out, curr)
		if curr.Kind() != reflect.Struct {
			continue
		}
		for i := 0; i < curr.NumField(); i++ {
			field := curr.Field(i)
			if field.Anonymous {
				queue = append(queue, field.Type)
			}
		}
	}
}

// Satisfies reports whether a resolved value can stand in for the expected
// capability type: it is an instance of it, assignable to it, or, for a
// Composite, any base satisfies it.
func Satisfies(v any, expected reflect.Type) bool {
	if expected == nil {
		return true
	}
	if c, ok := v.(*Composite); ok {
		for _, base := range c.bases {
			if Satisfies(base, expected) {
				return true
			}
		}
		return false
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if expected.Kind() == reflect.Interface {
		if t.Implements(expected) {
			return true
		}
		return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(expected)
	}
	if t.AssignableTo(expected) {
		return true
	}
	return t.Kind() == reflect.Pointer && t.Elem().AssignableTo(expected)
}
