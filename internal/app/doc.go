// Package app wires the application together: logger, config loading,
// namespace registry population, and command dispatch.
package app
