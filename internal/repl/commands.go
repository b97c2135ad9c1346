package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/jgrey4296/dejavu/internal/plugins"
)

// Command is a named REPL command with a one-line doc string.
type Command struct {
	Name string
	Doc  string
	Run  func(ctx context.Context, line string) error
}

// Commander holds the registered commands and the shortcut bindings loaded
// from the plugin table.
type Commander struct {
	out      io.Writer
	commands map[string]*Command
	order    []string
	table    plugins.Table
}

// New creates a Commander writing to out, with shortcuts sourced from the
// table's shortcuts group. The built-in help and shortcuts commands are
// pre-registered.
func New(out io.Writer, table plugins.Table) *Commander {
	c := &Commander{
		out:      out,
		commands: make(map[string]*Command),
		table:    table,
	}
	c.Register(&Command{
		Name: "help",
		Doc:  "List the available commands",
		Run: func(ctx context.Context, line string) error {
			for _, name := range c.order {
				fmt.Fprintf(c.out, "    %-10s %s\n", name, c.commands[name].Doc)
			}
			return nil
		},
	})
	c.Register(&Command{
		Name: "shortcuts",
		Doc:  "Print the :{kw} shortcut bindings loaded from config",
		Run: func(ctx context.Context, line string) error {
			c.PrintShortcuts()
			return nil
		},
	})
	return c
}

// Register adds a command. Duplicate names are a programmer error and
// panic.
func (c *Commander) Register(cmd *Command) {
	if _, exists := c.commands[cmd.Name]; exists {
		panic(fmt.Sprintf("repl command '%s' already registered", cmd.Name))
	}
	slog.Debug("Registering REPL command.", "name", cmd.Name)
	c.commands[cmd.Name] = cmd
	c.order = append(c.order, cmd.Name)
}

// Commands returns the registered commands in registration order.
func (c *Commander) Commands() []*Command {
	out := make([]*Command, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.commands[name])
	}
	return out
}

// PrintShortcuts prints the shortcut bindings, sorted by keyword.
func (c *Commander) PrintShortcuts() {
	recs, _ := c.table.Group(plugins.ShortcutGroup)
	sorted := make([]plugins.Record, len(recs))
	copy(sorted, recs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	fmt.Fprintln(c.out, "Repl Shortcut commands: ")
	for _, rec := range sorted {
		fmt.Fprintf(c.out, "    :%-5s -> %s\n", rec.Name, rec.Value)
	}
}

// Dispatch runs the command named by the first word of line. A leading
// ":kw" token is expanded through the shortcut bindings first.
func (c *Commander) Dispatch(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, ":") {
		head, rest, _ := strings.Cut(line[1:], " ")
		rec, ok := c.table.Find(plugins.ShortcutGroup, head)
		if !ok {
			return fmt.Errorf("unknown shortcut %q", head)
		}
		line = strings.TrimSpace(rec.Value + " " + rest)
	}

	name, rest, _ := strings.Cut(line, " ")
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return cmd.Run(ctx, strings.TrimSpace(rest))
}

// Loop reads lines from in and dispatches them until EOF or a quit
// command. Dispatch errors are printed, not fatal.
func (c *Commander) Loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		if err := c.Dispatch(ctx, line); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}
