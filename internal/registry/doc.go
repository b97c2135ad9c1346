// Package registry provides the central namespace table for the reference
// system.
//
// The Registry maps module-path strings (e.g. "modules.print") to
// Namespaces, and each Namespace maps symbol names to live Go values:
// types, callables, prototypes, whatever a package chooses to expose.
// Namespaces are populated eagerly at startup via the Module interface, or
// lazily through an init function that runs exactly once on first lookup,
// mirroring import-on-demand semantics.
//
// Resolution of a dotted attribute path beyond the first symbol is
// performed by reflection over the symbol's exported fields, methods, and
// string-keyed maps.
package registry
