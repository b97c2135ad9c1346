package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jgrey4296/dejavu/internal/config"
	"github.com/jgrey4296/dejavu/internal/ctxlog"
	"github.com/jgrey4296/dejavu/internal/plugins"
	"github.com/jgrey4296/dejavu/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	table    plugins.Table
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry.
func New(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	table := plugins.Table{}
	if loader != nil && len(cfg.ConfigPaths) > 0 {
		loaded, err := loader.Load(ctx, cfg.ConfigPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		table = loaded
		logger.Debug("Plugin table loaded.", "groups", len(table))
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		table:    table,
	}, nil
}

// Registry returns the application's namespace registry.
func (a *App) Registry() *registry.Registry { return a.registry }

// Table returns the loaded plugin/alias table.
func (a *App) Table() plugins.Table { return a.table }

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger { return a.logger }
