package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jgrey4296/dejavu/internal/ctxlog"
	"github.com/jgrey4296/dejavu/internal/fsutil"
	"github.com/jgrey4296/dejavu/internal/plugins"
)

// MultiLoader dispatches config files to format-specific loaders based on
// their extension, merging the resulting tables in file order.
type MultiLoader struct {
	byExt map[string]Loader
	exts  []string
}

// NewMultiLoader creates an empty MultiLoader; formats are attached with
// Register.
func NewMultiLoader() *MultiLoader {
	return &MultiLoader{byExt: make(map[string]Loader)}
}

// Register attaches a loader for a file extension (including the dot).
func (m *MultiLoader) Register(ext string, loader Loader) *MultiLoader {
	if _, exists := m.byExt[ext]; exists {
		panic(fmt.Sprintf("loader for extension '%s' already registered", ext))
	}
	m.byExt[ext] = loader
	m.exts = append(m.exts, ext)
	return m
}

// Load expands the given paths (files, directories, or glob patterns) and
// feeds each discovered file to the loader registered for its extension.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (plugins.Table, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ExpandPatterns(paths, m.exts)
	if err != nil {
		return nil, fmt.Errorf("expanding config paths: %w", err)
	}
	logger.Debug("Discovered config files.", "count", len(files))

	table := plugins.Table{}
	for _, file := range files {
		loader, ok := m.byExt[filepath.Ext(file)]
		if !ok {
			continue
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		table.Merge(part)
	}

	logger.Debug("Plugin table loaded.", "groups", len(table))
	return table, nil
}
