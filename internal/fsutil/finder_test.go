package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.toml"))
	touch(t, filepath.Join(dir, "sub", "b.toml"))
	touch(t, filepath.Join(dir, "sub", "c.yaml"))

	files, err := FindFilesByExtension(dir, ".toml")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.toml"),
		filepath.Join(dir, "sub", "b.toml"),
	}, files)
}

func TestFindFilesByExtensionPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(".", "") })
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.toml"))
	touch(t, filepath.Join(dir, "sub", "b.yaml"))
	touch(t, filepath.Join(dir, "sub", "c.txt"))

	exts := []string{".toml", ".yaml"}

	t.Run("plain file", func(t *testing.T) {
		files, err := ExpandPatterns([]string{filepath.Join(dir, "a.toml")}, exts)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.toml")}, files)
	})

	t.Run("directory walks all extensions", func(t *testing.T) {
		files, err := ExpandPatterns([]string{dir}, exts)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.toml"),
			filepath.Join(dir, "sub", "b.yaml"),
		}, files)
	})

	t.Run("doublestar glob", func(t *testing.T) {
		files, err := ExpandPatterns([]string{filepath.Join(dir, "**", "*.yaml")}, exts)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "sub", "b.yaml")}, files)
	})

	t.Run("filtered extension is dropped", func(t *testing.T) {
		files, err := ExpandPatterns([]string{filepath.Join(dir, "sub", "c.txt")}, exts)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path is skipped", func(t *testing.T) {
		files, err := ExpandPatterns([]string{filepath.Join(dir, "absent.toml")}, exts)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		path := filepath.Join(dir, "a.toml")
		files, err := ExpandPatterns([]string{path, path, dir}, exts)
		require.NoError(t, err)
		count := 0
		for _, f := range files {
			if f == path {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}
