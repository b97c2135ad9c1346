// Package tex models the structure of TeX documents as renderable
// statements. Environment is the shared begin/end block; the concrete
// environment family embeds it, so the embedding chain also serves as
// ancestry for mixin composition.
package tex
