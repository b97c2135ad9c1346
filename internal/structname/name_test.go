package structname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRendering(t *testing.T) {
	testCases := []struct {
		name     string
		head     []string
		tail     []string
		opts     []Option
		expected string
	}{
		{
			name:     "task name uses double separator",
			head:     []string{"agroup"},
			tail:     []string{"atask"},
			expected: "agroup::atask",
		},
		{
			name:     "import separator override",
			head:     []string{"a", "b"},
			tail:     []string{"C", "d"},
			opts:     []Option{WithSeparator(ImportSep)},
			expected: "a.b:C.d",
		},
		{
			name:     "empty head renders bare separator prefix",
			head:     nil,
			tail:     []string{"C"},
			opts:     []Option{WithSeparator(ImportSep)},
			expected: ":C",
		},
		{
			name:     "sub separator override",
			head:     []string{"a", "b"},
			tail:     []string{"c"},
			opts:     []Option{WithSeparator(ImportSep), WithSubSeparator("/")},
			expected: "a/b:c",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := New(tc.head, tc.tail, tc.opts...)
			assert.Equal(t, tc.expected, n.String())
		})
	}
}

func TestNameEquality(t *testing.T) {
	a := New([]string{"a", "b"}, []string{"C"}, WithSeparator(ImportSep))
	b := New([]string{"a", "b"}, []string{"C"}, WithSeparator(ImportSep))
	c := New([]string{"a"}, []string{"C"}, WithSeparator(ImportSep))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNameImmutability(t *testing.T) {
	head := []string{"a"}
	n := New(head, []string{"b"})
	head[0] = "mutated"
	assert.Equal(t, "a::b", n.String())

	got := n.Head()
	got[0] = "mutated"
	assert.Equal(t, "a::b", n.String())
}

func TestRebuildPreservesSeparators(t *testing.T) {
	n := New([]string{"a"}, []string{"b"}, WithSeparator(ImportSep))
	r := n.Rebuild([]string{"x", "y"}, []string{"z"})
	assert.Equal(t, "x.y:z", r.String())
	assert.Equal(t, "a:b", n.String())
}

func TestInstance(t *testing.T) {
	n := New([]string{"group"}, []string{"task"})

	first := n.Instance()
	second := n.Instance()

	require.True(t, strings.Contains(first.String(), InstanceMark))
	assert.NotEqual(t, n.String(), first.String())
	assert.NotEqual(t, first.String(), second.String(), "instances must be unique")
	assert.True(t, strings.HasPrefix(first.String(), "group::task"))
}
