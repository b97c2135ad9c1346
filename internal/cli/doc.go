// Package cli parses command-line arguments into an app invocation.
package cli
