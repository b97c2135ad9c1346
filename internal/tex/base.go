package tex

import (
	"fmt"
	"io"
	"strings"
)

// Statement is a renderable fragment of a TeX document.
type Statement interface {
	Render(w io.Writer) error
}

// Raw is a literal TeX fragment.
type Raw string

// Render writes the fragment followed by a newline.
func (r Raw) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, string(r))
	return err
}

// Environment is a begin/end block with optional bracket options and a
// body of nested statements.
type Environment struct {
	EnvName string
	Options []string
	Body    []Statement
}

// Append adds statements to the environment body and returns the receiver
// for chaining.
func (e *Environment) Append(stmts ...Statement) *Environment {
	e.Body = append(e.Body, stmts...)
	return e
}

// Render writes the full \begin..\end block.
func (e *Environment) Render(w io.Writer) error {
	opts := ""
	if len(e.Options) > 0 {
		opts = "[" + strings.Join(e.Options, ",") + "]"
	}
	if _, err := fmt.Fprintf(w, "\\begin{%s}%s\n", e.EnvName, opts); err != nil {
		return err
	}
	for _, stmt := range e.Body {
		if err := stmt.Render(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\\end{%s}\n", e.EnvName)
	return err
}
