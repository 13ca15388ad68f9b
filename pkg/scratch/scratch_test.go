package scratch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCreatesUniqueDirs(t *testing.T) {
	root := t.TempDir()

	d1, err := New(root, "Foo v01 (2020).cbz")
	require.NoError(t, err)

	d2, err := New(root, "Foo v01 (2020).cbz")
	require.NoError(t, err)

	require.NotEqual(t, d1.Path, d2.Path)

	for _, d := range []*Dir{d1, d2} {
		fi, err := os.Stat(d.Path)
		require.NoError(t, err)
		require.True(t, fi.IsDir())
		require.Equal(t, root, filepath.Dir(d.Path))
	}
}

func TestRemoveDeletesContents(t *testing.T) {
	root := t.TempDir()

	d, err := New(root, "series")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(d.Join("sub", "nested"), 0755))
	require.NoError(t, os.WriteFile(d.Join("sub", "nested", "page1.jpg"), []byte("x"), 0644))

	require.NoError(t, d.Remove())

	_, err = os.Stat(d.Path)
	require.True(t, os.IsNotExist(err))

	// Remove again is a no-op.
	require.NoError(t, d.Remove())
}

func TestNewCreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not", "yet", "there")

	d, err := New(root, "x")
	require.NoError(t, err)
	require.NoError(t, d.Remove())
}
