package tree

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestFound(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/path/to/foo_test.py", "OK"},
		{"/path/to/foo_test", "OK"},
		{"/path/to/foo_test.go", "OK"},
		{"/path/to/footest.py", ""},
		{"/path/to/foo.py", ""},
	}
	for _, tt := range tests {
		got, err := TestFound(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestStripTest(t *testing.T) {
	got, err := StripTest(filepath.Join("a", "b", "foo_test.py"))
	require.NoError(t, err)
	assert.Equal(t, "-> "+filepath.Join("a", "b", "foo.py"), got)

	got, err = StripTest(filepath.Join("a", "foo_test"))
	require.NoError(t, err)
	assert.Equal(t, "-> "+filepath.Join("a", "foo"), got)

	got, err = StripTest(filepath.Join("a", "footest.py"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRegistry(t *testing.T) {
	p, ok := Lookup("testfound")
	assert.True(t, ok)
	assert.NotNil(t, p)

	_, ok = Lookup("nope")
	assert.False(t, ok)

	assert.Contains(t, Names(), "striptest")
	assert.Panics(t, func() { Register("testfound", TestFound) })
}
