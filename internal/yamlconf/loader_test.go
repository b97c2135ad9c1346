package yamlconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrey4296/dejavu/internal/plugins"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "plugins.yaml", `
plugins:
  codegen:
    - name: gantt
      value: "dejavu.tex:Gantt"
    - name: draw
      value: "dejavu.geom:DefaultDrawSettings"
  mixins:
    - name: tikz
      value: "dejavu.tex:Tikz"
`)

	table, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	codegen, ok := table.Group("codegen")
	require.True(t, ok)
	require.Len(t, codegen, 2)
	assert.Equal(t, plugins.Record{Name: "gantt", Value: "dejavu.tex:Gantt"}, codegen[0])
	assert.Equal(t, "draw", codegen[1].Name, "sequence order is preserved")

	mixins, ok := table.Group(plugins.MixinGroup)
	require.True(t, ok)
	assert.Equal(t, []plugins.Record{{Name: "tikz", Value: "dejavu.tex:Tikz"}}, mixins)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "plugins:\n  codegen: [\n")
		_, err := NewLoader().Load(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("record missing a value", func(t *testing.T) {
		path := writeFile(t, "partial.yaml", `
plugins:
  codegen:
    - name: gantt
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "needs both name and value")
	})
}
