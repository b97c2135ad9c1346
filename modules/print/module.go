// Package print exposes simple output callables through the namespace
// registry.
package print

import (
	"fmt"
	"io"
	"sort"

	"github.com/jgrey4296/dejavu/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// KeyValues writes a map as sorted, aligned key = "value" lines.
func KeyValues(w io.Writer, values map[string]string) error {
	if values == nil {
		_, err := fmt.Fprintln(w, "      (null)")
		return err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "      %s = %q\n", k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Line writes a single line to w.
func Line(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

// Register registers the package namespace.
func (m *Module) Register(r *registry.Registry) {
	ns := r.Namespace("modules.print")
	ns.Register("KeyValues", KeyValues)
	ns.Register("Line", Line)
}
