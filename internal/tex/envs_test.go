package tex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrey4296/dejavu/internal/registry"
)

func render(t *testing.T, s Statement) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, s.Render(&sb))
	return sb.String()
}

func TestRawRender(t *testing.T) {
	assert.Equal(t, "\\item one\n", render(t, Raw("\\item one")))
}

func TestEnvironmentRender(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		fig := NewFigure()
		assert.Equal(t, "\\begin{figure}\n\\end{figure}\n", render(t, fig))
	})

	t.Run("options and body", func(t *testing.T) {
		env := &Environment{EnvName: "align", Options: []string{"a", "b"}}
		env.Append(Raw("x = y"))
		assert.Equal(t, "\\begin{align}[a,b]\nx = y\n\\end{align}\n", render(t, env))
	})

	t.Run("nesting", func(t *testing.T) {
		fig := NewFigure()
		fig.Append(NewTikz().Append(Raw("\\draw (0,0);")))
		expected := "\\begin{figure}\n" +
			"\\begin{tikzpicture}\n" +
			"\\draw (0,0);\n" +
			"\\end{tikzpicture}\n" +
			"\\end{figure}\n"
		assert.Equal(t, expected, render(t, fig))
	})

	t.Run("append chains and accumulates", func(t *testing.T) {
		list := NewItemList()
		list.Append(Raw("\\item a")).Append(Raw("\\item b"))
		assert.Len(t, list.Body, 2)
	})
}

func TestEnvironmentNames(t *testing.T) {
	testCases := []struct {
		env     Statement
		envName string
	}{
		{NewFigure(), "figure"},
		{NewEquation(), "equation"},
		{NewProof(), "proof"},
		{NewVerbatim(), "verbatim"},
		{NewItemList(), "itemize"},
		{NewTikz(), "tikzpicture"},
		{NewFont(), "font"},
		{NewMath(), "math"},
	}

	for _, tc := range testCases {
		rendered := render(t, tc.env)
		assert.True(t, strings.HasPrefix(rendered, "\\begin{"+tc.envName+"}"), rendered)
	}
}

func TestGantt(t *testing.T) {
	g := NewGantt()
	assert.Equal(t, "tikzpicture", g.EnvName)
	assert.Equal(t, "\\begin{tikzpicture}[gantt]\n\\end{tikzpicture}\n", render(t, g))
}

func TestModuleRegister(t *testing.T) {
	reg := registry.New()
	Module{}.Register(reg)

	ns, err := reg.Lookup("dejavu.tex")
	require.NoError(t, err)

	proto, err := ns.Symbol("Gantt")
	require.NoError(t, err)
	assert.IsType(t, &Gantt{}, proto)

	ctor, err := ns.Symbol("NewFigure")
	require.NoError(t, err)
	fn, ok := ctor.(func() *Figure)
	require.True(t, ok)
	assert.Equal(t, "figure", fn().EnvName)
}
