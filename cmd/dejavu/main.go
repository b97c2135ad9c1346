package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jgrey4296/dejavu/internal/app"
	"github.com/jgrey4296/dejavu/internal/cli"
	"github.com/jgrey4296/dejavu/internal/config"
	"github.com/jgrey4296/dejavu/internal/hclconf"
	"github.com/jgrey4296/dejavu/internal/tomlconf"
	"github.com/jgrey4296/dejavu/internal/yamlconf"
)

// main is the entrypoint for the dejavu binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := newLoader()
	dejavuApp, err := app.New(outW, inv.Config, loader)
	if err != nil {
		return err
	}

	return dejavuApp.Run(context.Background(), inv.Command, inv.Args)
}

// newLoader assembles the multi-format plugin table loader.
func newLoader() config.Loader {
	return config.NewMultiLoader().
		Register(".hcl", hclconf.NewLoader()).
		Register(".toml", tomlconf.NewLoader()).
		Register(".yaml", yamlconf.NewLoader()).
		Register(".yml", yamlconf.NewLoader())
}
