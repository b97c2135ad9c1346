// Package tomlconf is the TOML implementation of the config.Loader
// interface. Plugin groups are arrays of tables, which preserves record
// order:
//
//	[[plugins.codegen]]
//	name  = "sqlite"
//	value = "db.sqlite:Driver"
package tomlconf

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jgrey4296/dejavu/internal/ctxlog"
	"github.com/jgrey4296/dejavu/internal/plugins"
)

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level plugins structure of a config file.
type fileRoot struct {
	Plugins map[string][]plugins.Record `toml:"plugins"`
}

// Load parses the given TOML files into a plugin table.
func (l *Loader) Load(ctx context.Context, paths ...string) (plugins.Table, error) {
	logger := ctxlog.FromContext(ctx)
	table := plugins.Table{}

	for _, path := range paths {
		var root fileRoot
		if _, err := toml.DecodeFile(path, &root); err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", path, err)
		}
		for group, records := range root.Plugins {
			for _, rec := range records {
				if rec.Name == "" || rec.Value == "" {
					return nil, fmt.Errorf("plugin record in group %q of %s needs both name and value", group, path)
				}
				table.Add(group, rec)
			}
		}
		logger.Debug("Loaded plugin definitions from TOML file.", "file", path)
	}

	return table, nil
}
