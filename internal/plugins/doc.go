// Package plugins models the alias table consumed by the reference
// resolver: named groups of (name, value) records, where a value is a full
// code reference string and the name is its short alias.
package plugins
