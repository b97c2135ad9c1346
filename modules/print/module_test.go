package print

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrey4296/dejavu/internal/registry"
)

func TestKeyValues(t *testing.T) {
	t.Run("sorted aligned output", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, KeyValues(out, map[string]string{
			"zebra": "last",
			"alpha": "first",
		}))

		expected := "      alpha = \"first\"\n" +
			"      zebra = \"last\"\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("nil map renders a placeholder", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, KeyValues(out, nil))
		assert.Equal(t, "      (null)\n", out.String())
	})
}

func TestLine(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Line(out, "hello"))
	assert.Equal(t, "hello\n", out.String())
}

func TestRegister(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)

	ns, err := reg.Lookup("modules.print")
	require.NoError(t, err)

	v, err := ns.Symbol("KeyValues")
	require.NoError(t, err)
	assert.NotNil(t, v)
}
