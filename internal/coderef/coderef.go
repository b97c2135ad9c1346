package coderef

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/jgrey4296/dejavu/internal/plugins"
	"github.com/jgrey4296/dejavu/internal/structname"
)

// Ref is a reference to a registered class, prototype, or callable. It can
// be created from a string (so it can be used from config files) or from a
// live Go value. Refs are immutable; WithMixins returns a new Ref.
type Ref struct {
	name   structname.Name
	mixins []*Ref

	// target caches the resolved base value; resolved caches the final
	// result of the first Resolve call, composite included. Both are
	// write-once.
	target   any
	resolved any
}

// EntryPoint is the contract for plugin-discovery records that can load
// their target on demand.
type EntryPoint interface {
	Name() string
	Load() (any, error)
}

// Parse builds a Ref from its string form: an optional dotted module path,
// the import separator, and a dotted attribute path. A string without the
// separator is an attribute path with an empty module path.
func Parse(input string) (*Ref, error) {
	if strings.Contains(input, structname.TaskSep) {
		return nil, &ConfigError{Input: input, Reason: "code references use a single colon, not the task separator"}
	}

	var head, tail []string
	if strings.Contains(input, structname.ImportSep) {
		parts := strings.Split(input, structname.ImportSep)
		if len(parts) != 2 {
			return nil, &ConfigError{Input: input, Reason: "expected the form module.path:Attr.Path"}
		}
		if parts[0] != "" {
			head = strings.Split(parts[0], structname.SubSep)
		}
		tail = strings.Split(parts[1], structname.SubSep)
	} else {
		tail = strings.Split(input, structname.SubSep)
	}

	for _, seg := range append(slices.Clone(head), tail...) {
		if seg == "" {
			return nil, &ConfigError{Input: input, Reason: "reference contains an empty path segment"}
		}
	}

	return &Ref{name: newRefName(head, tail)}, nil
}

// FromValue builds a Ref from a live value: a named type, a pointer to
// one, or a function. The module path is the value's package path, the
// attribute path its declared name, and the resolution cache is primed so
// no registry lookup is needed later.
func FromValue(v any) (*Ref, error) {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return nil, &ConfigError{Input: "<nil>", Reason: "cannot reference a nil value"}
	}

	var module, symbol string
	if rt.Kind() == reflect.Func {
		full := runtime.FuncForPC(reflect.ValueOf(v).Pointer()).Name()
		module, symbol = splitQualified(full)
	} else {
		t := rt
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		module, symbol = t.PkgPath(), t.Name()
	}
	if symbol == "" {
		return nil, &ConfigError{
			Input:  fmt.Sprintf("%T", v),
			Reason: "value has no declared name to reference",
		}
	}

	var head []string
	if module != "" {
		head = []string{module}
	}
	tail := strings.Split(symbol, structname.SubSep)

	return &Ref{name: newRefName(head, tail), target: v}, nil
}

// FromEntryPoint loads an entry point eagerly and builds a Ref from the
// loaded value.
func FromEntryPoint(ep EntryPoint) (*Ref, error) {
	v, err := ep.Load()
	if err != nil {
		return nil, &ImportError{Ref: ep.Name(), Reason: "entry point load failed", Err: err}
	}
	return FromValue(v)
}

// FromAlias resolves a short alias against a group of the plugin table. An
// absent group or unmatched alias falls back to parsing the alias itself as
// a literal reference string.
func FromAlias(alias, group string, table plugins.Table) (*Ref, error) {
	if table == nil {
		return Parse(alias)
	}
	if _, ok := table.Group(group); !ok {
		return Parse(alias)
	}
	if rec, ok := table.Find(group, alias); ok {
		return Parse(rec.Value)
	}
	return Parse(alias)
}

func newRefName(head, tail []string) structname.Name {
	return structname.New(head, tail, structname.WithSeparator(structname.ImportSep))
}

// splitQualified splits a runtime function name ("pkg/path.Recv.Name-fm")
// into package path and declared name.
func splitQualified(full string) (module, symbol string) {
	full = strings.TrimSuffix(full, "-fm")
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], structname.SubSep)
	if dot < 0 {
		return "", full
	}
	dot += slash + 1
	symbol = strings.NewReplacer("(", "", "*", "", ")", "").Replace(full[dot+1:])
	return full[:dot], symbol
}

// String renders the canonical form used for equality, hashing, and alias
// lookups.
func (r *Ref) String() string { return r.name.String() }

// Key returns the canonical form, suitable as a map key.
func (r *Ref) Key() string { return r.String() }

// Module returns the dot-joined module path.
func (r *Ref) Module() string { return r.name.HeadString() }

// Value returns the dot-joined attribute path.
func (r *Ref) Value() string { return r.name.TailString() }

// Name returns the underlying structured name.
func (r *Ref) Name() structname.Name { return r.name }

// Equal reports whether two refs render to the same canonical string.
// Mixins and cached resolution state do not participate.
func (r *Ref) Equal(other *Ref) bool {
	return other != nil && r.String() == other.String()
}

// Mixins returns a copy of the ordered mixin list.
func (r *Ref) Mixins() []*Ref { return slices.Clone(r.mixins) }

// WithMixins returns a new Ref whose mixin list extends the receiver's with
// the supplied mixins, skipping any already present by value. A mixin may
// be a *Ref, a string (resolved through the mixins group of table when one
// is supplied, else parsed as a literal reference), or a live value.
func (r *Ref) WithMixins(table plugins.Table, mixins ...any) (*Ref, error) {
	out := slices.Clone(r.mixins)
	for _, m := range mixins {
		var ref *Ref
		var err error
		switch v := m.(type) {
		case *Ref:
			ref = v
		case string:
			if table != nil {
				ref, err = FromAlias(v, plugins.MixinGroup, table)
			} else {
				ref, err = Parse(v)
			}
		default:
			ref, err = FromValue(m)
			if err != nil {
				err = fmt.Errorf("unrecognised mixin argument of type %T: %w", m, err)
			}
		}
		if err != nil {
			return nil, err
		}
		if !containsRef(out, ref) {
			out = append(out, ref)
		}
	}
	return &Ref{name: r.name, mixins: out, target: r.target}, nil
}

func containsRef(refs []*Ref, ref *Ref) bool {
	for _, r := range refs {
		if r.Equal(ref) {
			return true
		}
	}
	return false
}
