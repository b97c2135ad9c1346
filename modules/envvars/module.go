// Package envvars exposes the process environment through the namespace
// registry.
package envvars

import (
	"os"
	"strings"

	"github.com/jgrey4296/dejavu/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Snapshot returns the current process environment as a map.
func Snapshot() map[string]string {
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

// Register registers the package namespace. The snapshot itself is exposed
// lazily so the environment is not captured unless something resolves it.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterLazy("modules.envvars", func() (map[string]any, error) {
		return map[string]any{
			"Snapshot": Snapshot,
			"All":      Snapshot(),
		}, nil
	})
}
