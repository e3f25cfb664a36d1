package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirPAndCleanup(t *testing.T) {
	osfs := afero.NewOsFs()
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "a", "b", "c")
	require.NoError(t, MkdirP(osfs, nested))
	// existing directory is fine
	require.NoError(t, MkdirP(osfs, nested))

	require.NoError(t, os.WriteFile(filepath.Join(nested, "file.txt"), []byte("data"), 0o644))
	require.NoError(t, CleanupDir(osfs, tmp))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMkdirPEmpty(t *testing.T) {
	assert.Error(t, MkdirP(afero.NewMemMapFs(), ""))
}

func TestRemoveTree(t *testing.T) {
	osfs := afero.NewOsFs()
	dir := filepath.Join(t.TempDir(), "tree")
	require.NoError(t, MkdirP(osfs, filepath.Join(dir, "x", "y")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x", "f"), []byte("f"), 0o644))

	require.NoError(t, RemoveTree(osfs, dir))
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// already gone
	require.NoError(t, RemoveTree(osfs, dir))
}

func TestListNames(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/root/b", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/root/a", []byte("a"), 0o644))
	require.NoError(t, MkdirP(mem, "/root/sub/deeper"))

	names, err := ListNames(mem, "/root")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "sub"}, names)

	_, err = ListNames(mem, "/missing")
	assert.Error(t, err)
}
