package fnutil

// ForceList coerces a value that may be a bare T or a []T into a slice.
// The second return reports whether the coercion applied.
func ForceList[T any](v any) ([]T, bool) {
	switch x := v.(type) {
	case []T:
		return x, true
	case T:
		return []T{x}, true
	default:
		return nil, false
	}
}

// Curry2 fixes the first argument of a two-argument function, yielding a
// constructor-style factory.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 fixes the first argument of a three-argument function.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B, C) R {
	return func(a A) func(B, C) R {
		return func(b B, c C) R {
			return fn(a, b, c)
		}
	}
}
