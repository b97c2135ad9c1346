package fnutil

import (
	"log/slog"
	"reflect"
)

// VerifySignature checks a function's parameter types against an expected
// prefix (head) and suffix (tail). Handler registration uses this to
// enforce calling conventions without invoking anything. A non-function
// value never verifies.
func VerifySignature(fn any, head []reflect.Type, tail []reflect.Type) bool {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return false
	}
	if t.NumIn() < len(head)+len(tail) {
		return false
	}

	for i, expected := range head {
		if got := t.In(i); got != expected && !got.AssignableTo(expected) {
			slog.Debug("Signature head mismatch.", "index", i, "expected", expected.String(), "got", got.String())
			return false
		}
	}
	for i, expected := range tail {
		got := t.In(t.NumIn() - len(tail) + i)
		if got != expected && !got.AssignableTo(expected) {
			slog.Debug("Signature tail mismatch.", "index", i, "expected", expected.String(), "got", got.String())
			return false
		}
	}
	return true
}
