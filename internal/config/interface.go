package config

import (
	"context"

	"github.com/jgrey4296/dejavu/internal/plugins"
)

// Loader is the interface for a format-specific configuration loader. It
// reads the given files and translates them into the plugin/alias table.
type Loader interface {
	Load(ctx context.Context, paths ...string) (plugins.Table, error)
}
