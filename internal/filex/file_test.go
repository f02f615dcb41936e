package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestSelect_RelativePath(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("cat.png", []byte("meow"), 0o600))

	f, err := Select("cat.png")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "cat.png"))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(f.Path)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, "cat.png", f.Name)
	assert.Equal(t, int64(4), f.Size)
}

func TestSelect_Errors(t *testing.T) {
	tmp := t.TempDir()

	_, err := Select(filepath.Join(tmp, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Select(tmp)
	require.ErrorIs(t, err, ErrIsDirectory)
}

func TestLoad_ContentType(t *testing.T) {
	tmp := t.TempDir()

	png := filepath.Join(tmp, "a.png")
	require.NoError(t, os.WriteFile(png, []byte("whatever"), 0o600))

	noext := filepath.Join(tmp, "notes")
	require.NoError(t, os.WriteFile(noext, []byte("plain words"), 0o600))

	f, err := Select(png)
	require.NoError(t, err)
	data, ct, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, []byte("whatever"), data)
	assert.Equal(t, "image/png", ct)

	f, err = Select(noext)
	require.NoError(t, err)
	_, ct, err = Load(f)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "text/plain"), ct)
}

func TestLoad_RemovedAfterSelect(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	f, err := Select(p)
	require.NoError(t, err)
	require.NoError(t, os.Remove(p))

	_, _, err = Load(f)
	require.ErrorIs(t, err, os.ErrNotExist)
}
