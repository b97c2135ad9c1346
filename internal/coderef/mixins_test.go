package coderef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrey4296/dejavu/internal/plugins"
	"github.com/jgrey4296/dejavu/internal/testutil"
)

func TestMinimalMixins(t *testing.T) {
	reg := newTestRegistry()

	t.Run("subsumed mixin is dropped", func(t *testing.T) {
		// Gantt's ancestor chain (Gantt, Tikz, Environment) covers all of
		// Tikz's (Tikz, Environment).
		base := mustParse(t, "dejavu.geom:DrawSettings")
		ref, err := base.WithMixins(nil, "dejavu.tex:Tikz", "dejavu.tex:Gantt")
		require.NoError(t, err)

		minimal, err := ref.MinimalMixins(reg)
		require.NoError(t, err)

		require.Len(t, minimal, 1)
		assert.Equal(t, "dejavu.tex:Gantt", minimal[0].String())
	})

	t.Run("non-subsumed mixins are kept most-derived first", func(t *testing.T) {
		// Figure shares the Environment ancestor with Gantt but adds its
		// own type, so it survives the reduction.
		base := mustParse(t, "dejavu.geom:DrawSettings")
		ref, err := base.WithMixins(nil, "dejavu.tex:Figure", "dejavu.tex:Tikz", "dejavu.tex:Gantt")
		require.NoError(t, err)

		minimal, err := ref.MinimalMixins(reg)
		require.NoError(t, err)

		require.Len(t, minimal, 2)
		assert.Equal(t, "dejavu.tex:Gantt", minimal[0].String())
		assert.Equal(t, "dejavu.tex:Figure", minimal[1].String())
	})

	t.Run("no mixins yields no result", func(t *testing.T) {
		ref := mustParse(t, "dejavu.tex:Figure")
		minimal, err := ref.MinimalMixins(reg)
		require.NoError(t, err)
		assert.Empty(t, minimal)
	})
}

func TestToAliases(t *testing.T) {
	reg := newTestRegistry()
	table := testutil.SampleTable()

	t.Run("base and mixins are aliased", func(t *testing.T) {
		base := mustParse(t, "dejavu.tex:Gantt")
		ref, err := base.WithMixins(table, "tikz", "figure")
		require.NoError(t, err)

		name, mixins, err := ref.ToAliases("codegen", table, reg)
		require.NoError(t, err)

		assert.Equal(t, "gantt", name)
		assert.Equal(t, []string{"tikz", "figure"}, mixins)
	})

	t.Run("unknown reference keeps its literal form", func(t *testing.T) {
		ref := mustParse(t, "dejavu.tex:Math")
		name, mixins, err := ref.ToAliases("codegen", table, reg)
		require.NoError(t, err)

		assert.Equal(t, "dejavu.tex:Math", name)
		assert.Empty(t, mixins)
	})

	t.Run("mixins group does not recurse", func(t *testing.T) {
		base := mustParse(t, "dejavu.tex:Tikz")
		ref, err := base.WithMixins(table, "figure")
		require.NoError(t, err)

		name, mixins, err := ref.ToAliases(plugins.MixinGroup, table, reg)
		require.NoError(t, err)

		assert.Equal(t, "tikz", name)
		assert.Empty(t, mixins)
	})
}
