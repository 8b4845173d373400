// internal/paths/paths_test.go
package paths

import (
	"archive/tar"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("ATOM\n"), 0o644))
	return path
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdb"))
	touch(t, filepath.Join(dir, "a.pdb"))
	touch(t, filepath.Join(dir, "notes.txt"))

	set, err := Resolve([]string{dir}, filepath.Join(dir, "tmp"))
	require.NoError(t, err)
	defer func() { _ = set.Cleanup() }()

	require.Len(t, set.Paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.pdb"), set.Paths[0])
	assert.Equal(t, filepath.Join(dir, "b.pdb"), set.Paths[1])
}

func TestResolveDeduplicates(t *testing.T) {
	dir := t.TempDir()
	p := touch(t, filepath.Join(dir, "conf.pdb"))

	set, err := Resolve([]string{p, dir, p}, filepath.Join(dir, "tmp"))
	require.NoError(t, err)
	defer func() { _ = set.Cleanup() }()

	assert.Equal(t, []string{p}, set.Paths)
}

func TestResolveNoStructures(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve([]string{dir}, filepath.Join(dir, "tmp"))
	assert.Error(t, err)
}

func TestResolveTarArchive(t *testing.T) {
	dir := t.TempDir()
	arc := filepath.Join(dir, "ensemble.tar")

	fh, err := os.Create(arc)
	require.NoError(t, err)
	tw := tar.NewWriter(fh)
	for _, name := range []string{"sub/conf_2.pdb", "conf_1.pdb", "README"} {
		body := []byte("ATOM line for " + name + "\n")
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name, Mode: 0o644, Size: int64(len(body)), Typeflag: tar.TypeReg,
		}))
		_, err = tw.Write(body)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, fh.Close())

	tmp := filepath.Join(dir, "extract")
	set, err := Resolve([]string{arc}, tmp)
	require.NoError(t, err)

	require.Len(t, set.Paths, 2)
	// Flattened to base names, sorted.
	assert.Equal(t, filepath.Join(tmp, "conf_1.pdb"), set.Paths[0])
	assert.Equal(t, filepath.Join(tmp, "conf_2.pdb"), set.Paths[1])
	for _, p := range set.Paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}

	// Cleanup removes the extraction directory, and is idempotent.
	require.NoError(t, set.Cleanup())
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, set.Cleanup())
}

func TestResolvePlainFilesKeepNoTmpdir(t *testing.T) {
	dir := t.TempDir()
	p := touch(t, filepath.Join(dir, "conf.pdb"))
	tmp := filepath.Join(dir, "tmp")

	set, err := Resolve([]string{p}, tmp)
	require.NoError(t, err)
	require.NoError(t, set.Cleanup())

	// No archive involved: the tmpdir is never created.
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
}
