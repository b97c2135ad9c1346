// Package coderef implements structured references to registered code: a
// string-renderable pointer of the form "module.path:Attr.Path" that can be
// resolved, once, into a live Go value through the namespace registry.
//
// References can be built from strings (so they can live in config files),
// from live values, from plugin entry points, or from short aliases mapped
// through a plugins.Table. A reference may carry mixins: further references
// composed ahead of the target when it is resolved, yielding a synthesized
// composite in which the mixins take precedence.
package coderef
