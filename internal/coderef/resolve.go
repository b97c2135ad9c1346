package coderef

import (
	"fmt"
	"reflect"

	"github.com/jgrey4296/dejavu/internal/compose"
	"github.com/jgrey4296/dejavu/internal/registry"
)

// GeneratedPrefix marks the names of types synthesized during mixin
// composition.
const GeneratedPrefix = "Generated:"

type resolveOptions struct {
	ensure reflect.Type
}

// ResolveOption customises a Resolve call.
type ResolveOption func(*resolveOptions)

// Ensure requires the resolved value to satisfy the given capability type:
// implement it if it is an interface, otherwise be assignable to it. A
// composite satisfies the check when any of its bases does.
func Ensure(t reflect.Type) ResolveOption {
	return func(o *resolveOptions) { o.ensure = t }
}

// Resolve turns the reference into a live value. The module path selects a
// namespace in the registry and the attribute path is walked from there.
// If the reference carries mixins, each is resolved recursively and a
// composite is synthesized with the mixins ahead of the target. The final
// result is cached on the instance; later calls return the identical value
// without touching the registry again.
func (r *Ref) Resolve(reg *registry.Registry, opts ...ResolveOption) (any, error) {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if r.resolved == nil {
		base := r.target
		if base == nil {
			v, err := r.lookup(reg)
			if err != nil {
				return nil, err
			}
			base = v
			r.target = base
		}

		result := base
		if len(r.mixins) > 0 {
			bases := make([]any, 0, len(r.mixins)+1)
			for _, mixin := range r.mixins {
				v, err := mixin.Resolve(reg)
				if err != nil {
					return nil, &ImportError{Ref: r.String(), Reason: fmt.Sprintf("mixin %q failed", mixin), Err: err}
				}
				bases = append(bases, v)
			}
			bases = append(bases, base)
			result = compose.New(GeneratedPrefix+r.targetName(), bases...)
		}
		r.resolved = result
	}

	if !compose.Satisfies(r.resolved, o.ensure) {
		return nil, &ImportError{
			Ref:    r.String(),
			Reason: fmt.Sprintf("resolved value of type %T does not satisfy %s", r.resolved, o.ensure),
		}
	}
	return r.resolved, nil
}

// lookup performs the two-stage registry resolution: namespace first, then
// the attribute walk. The two failure modes surface as import errors
// distinguished by message.
func (r *Ref) lookup(reg *registry.Registry) (any, error) {
	if reg == nil {
		return nil, &ImportError{Ref: r.String(), Reason: "no registry supplied"}
	}
	ns, err := reg.Lookup(r.Module())
	if err != nil {
		return nil, &ImportError{Ref: r.String(), Reason: fmt.Sprintf("namespace %q can't be found", r.Module()), Err: err}
	}
	v, err := ns.Walk(r.name.Tail())
	if err != nil {
		return nil, &ImportError{Ref: r.String(), Reason: "attempted to resolve attribute path but failed", Err: err}
	}
	return v, nil
}

// targetName is the final attribute segment, used to name composites.
func (r *Ref) targetName() string {
	tail := r.name.Tail()
	if len(tail) == 0 {
		return r.String()
	}
	return tail[len(tail)-1]
}
