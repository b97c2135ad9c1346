// Package repl provides the interactive command loop: named commands with
// doc strings, config-driven shortcut bindings, and line dispatch.
package repl
