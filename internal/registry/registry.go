package registry

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNamespaceNotFound is wrapped by Lookup failures.
var ErrNamespaceNotFound = errors.New("namespace not found")

// Module is the interface packages implement to contribute namespaces to a
// registry instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds the namespaces registered for a single application
// instance. Registration happens during startup; lookups afterwards.
type Registry struct {
	namespaces map[string]*Namespace
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		namespaces: make(map[string]*Namespace),
	}
}

// Namespace returns the namespace registered under the given module path,
// creating an empty eager namespace if none exists yet. Intended for use
// from Module.Register implementations.
func (r *Registry) Namespace(module string) *Namespace {
	if ns, ok := r.namespaces[module]; ok {
		return ns
	}
	slog.Debug("Registering namespace.", "module", module)
	ns := &Namespace{name: module, symbols: make(map[string]any)}
	r.namespaces[module] = ns
	return ns
}

// RegisterLazy registers a namespace whose symbols are produced by init,
// which runs at most once, on the first Lookup that touches the namespace.
func (r *Registry) RegisterLazy(module string, init func() (map[string]any, error)) {
	if _, exists := r.namespaces[module]; exists {
		panic(fmt.Sprintf("namespace '%s' already registered", module))
	}
	slog.Debug("Registering lazy namespace.", "module", module)
	r.namespaces[module] = &Namespace{name: module, init: init}
}

// Lookup returns the namespace for a module path, running its init function
// if it has not been loaded yet.
func (r *Registry) Lookup(module string) (*Namespace, error) {
	ns, ok := r.namespaces[module]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNamespaceNotFound, module)
	}
	if err := ns.load(); err != nil {
		return nil, fmt.Errorf("loading namespace %q: %w", module, err)
	}
	return ns, nil
}

// Modules returns the module paths of every registered namespace.
func (r *Registry) Modules() []string {
	out := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		out = append(out, name)
	}
	return out
}
