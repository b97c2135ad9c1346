package app

import (
	"context"
	"io"
	"os"
)

// replInputKey carries an alternate REPL input stream through context,
// used by tests to drive the loop.
type replInputKey struct{}

// stdin is the default REPL input.
var stdin io.Reader = os.Stdin

// WithREPLInput returns a context whose REPL reads from r instead of
// standard input.
func WithREPLInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, replInputKey{}, r)
}
