// Package yamlconf is the YAML implementation of the config.Loader
// interface:
//
//	plugins:
//	  codegen:
//	    - name: sqlite
//	      value: "db.sqlite:Driver"
package yamlconf

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jgrey4296/dejavu/internal/ctxlog"
	"github.com/jgrey4296/dejavu/internal/plugins"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level plugins structure of a config file.
type fileRoot struct {
	Plugins map[string][]plugins.Record `yaml:"plugins"`
}

// Load parses the given YAML files into a plugin table.
func (l *Loader) Load(ctx context.Context, paths ...string) (plugins.Table, error) {
	logger := ctxlog.FromContext(ctx)
	table := plugins.Table{}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}
		var root fileRoot
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
		}
		for group, records := range root.Plugins {
			for _, rec := range records {
				if rec.Name == "" || rec.Value == "" {
					return nil, fmt.Errorf("plugin record in group %q of %s needs both name and value", group, path)
				}
				table.Add(group, rec)
			}
		}
		logger.Debug("Loaded plugin definitions from YAML file.", "file", path)
	}

	return table, nil
}
