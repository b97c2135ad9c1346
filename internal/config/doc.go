// Package config defines the format-agnostic contract for loading the
// plugin/alias table, plus a multi-format loader that dispatches to
// registered per-format implementations by file extension.
package config
