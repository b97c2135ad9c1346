package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jgrey4296/dejavu/internal/coderef"
	"github.com/jgrey4296/dejavu/internal/compose"
	"github.com/jgrey4296/dejavu/internal/ctxlog"
	"github.com/jgrey4296/dejavu/internal/repl"
)

// Run dispatches a top-level command: resolve, aliases, shortcuts, or
// repl.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", command)

	switch command {
	case "resolve":
		if len(args) != 1 {
			return fmt.Errorf("resolve expects exactly one reference argument")
		}
		return a.resolve(ctx, args[0])
	case "aliases":
		if len(args) != 1 {
			return fmt.Errorf("aliases expects exactly one reference argument")
		}
		return a.aliases(ctx, args[0])
	case "shortcuts":
		a.commander().PrintShortcuts()
		return nil
	case "repl":
		return a.repl(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// resolve parses a reference (alias-aware when a group is configured) and
// resolves it against the registry.
func (a *App) resolve(ctx context.Context, input string) error {
	ref, err := a.buildRef(input)
	if err != nil {
		return err
	}
	v, err := ref.Resolve(a.registry)
	if err != nil {
		return err
	}
	if c, ok := v.(*compose.Composite); ok {
		fmt.Fprintf(a.outW, "%s -> %s %v\n", ref, c.Name(), c.Bases())
		return nil
	}
	fmt.Fprintf(a.outW, "%s -> %T\n", ref, v)
	return nil
}

// aliases maps a reference back to its short form within the configured
// group.
func (a *App) aliases(ctx context.Context, input string) error {
	ref, err := a.buildRef(input)
	if err != nil {
		return err
	}
	base, mixins, err := ref.ToAliases(a.config.Group, a.table, a.registry)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "%s\n", base)
	for _, mixin := range mixins {
		fmt.Fprintf(a.outW, "  mixin: %s\n", mixin)
	}
	return nil
}

// repl runs the interactive loop with the resolver commands registered.
func (a *App) repl(ctx context.Context, args []string) error {
	c := a.commander()
	in, ok := ctx.Value(replInputKey{}).(io.Reader)
	if !ok {
		in = stdin
	}
	return c.Loop(ctx, in)
}

// commander builds the REPL commander with the app's resolver commands.
func (a *App) commander() *repl.Commander {
	c := repl.New(a.outW, a.table)
	c.Register(&repl.Command{
		Name: "resolve",
		Doc:  "Resolve a code reference against the registry",
		Run: func(ctx context.Context, line string) error {
			return a.resolve(ctx, strings.TrimSpace(line))
		},
	})
	c.Register(&repl.Command{
		Name: "aliases",
		Doc:  "Map a code reference back to its configured aliases",
		Run: func(ctx context.Context, line string) error {
			return a.aliases(ctx, strings.TrimSpace(line))
		},
	})
	return c
}

// buildRef parses user input into a Ref, going through the alias table
// when a lookup group is configured.
func (a *App) buildRef(input string) (*coderef.Ref, error) {
	if a.config.Group != "" {
		return coderef.FromAlias(input, a.config.Group, a.table)
	}
	return coderef.Parse(input)
}
