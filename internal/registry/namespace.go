package registry

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrSymbolNotFound is wrapped by symbol and attribute lookup failures.
var ErrSymbolNotFound = errors.New("symbol not found")

// Namespace is a named collection of symbols. Eager namespaces are
// populated via Register; lazy namespaces defer to an init function that
// runs once on first access.
type Namespace struct {
	name    string
	symbols map[string]any
	init    func() (map[string]any, error)
	loaded  bool
}

// Name returns the module path this namespace is registered under.
func (ns *Namespace) Name() string { return ns.name }

// Register adds a symbol to the namespace. Duplicate registration is a
// programmer error and panics.
func (ns *Namespace) Register(symbol string, value any) {
	if ns.symbols == nil {
		ns.symbols = make(map[string]any)
	}
	if _, exists := ns.symbols[symbol]; exists {
		panic(fmt.Sprintf("symbol '%s' already registered in namespace '%s'", symbol, ns.name))
	}
	slog.Debug("Registering symbol.", "namespace", ns.name, "symbol", symbol)
	ns.symbols[symbol] = value
}

// load runs the init function if one is present and it has not run yet.
// Loading is idempotent: a second call is a no-op regardless of outcome of
// symbol lookups in between.
func (ns *Namespace) load() error {
	if ns.loaded || ns.init == nil {
		return nil
	}
	symbols, err := ns.init()
	if err != nil {
		return err
	}
	if ns.symbols == nil {
		ns.symbols = make(map[string]any)
	}
	for name, value := range symbols {
		ns.symbols[name] = value
	}
	ns.loaded = true
	return nil
}

// Symbol returns the named top-level symbol.
func (ns *Namespace) Symbol(name string) (any, error) {
	if err := ns.load(); err != nil {
		return nil, err
	}
	v, ok := ns.symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in namespace %q", ErrSymbolNotFound, name, ns.name)
	}
	return v, nil
}

// Walk resolves a dotted attribute path: the first segment is a symbol
// lookup, each further segment an attribute step on the previous value.
func (ns *Namespace) Walk(path []string) (any, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty attribute path in namespace %q", ErrSymbolNotFound, ns.name)
	}
	curr, err := ns.Symbol(path[0])
	if err != nil {
		return nil, err
	}
	for _, name := range path[1:] {
		curr, err = attribute(curr, name)
		if err != nil {
			return nil, err
		}
	}
	return curr, nil
}
