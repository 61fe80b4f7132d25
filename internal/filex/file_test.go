package filex

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePrivate_CreatesParentsAndFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "token")

	require.NoError(t, WritePrivate(path, []byte("secret")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "secret", string(data))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

		di, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o700), di.Mode().Perm())
	}
}

func TestWritePrivate_TightensExistingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WritePrivate(path, []byte("new")))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestWritePrivate_FailsIfParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := WritePrivate(filepath.Join(blocker, "token"), []byte("x"))
	require.Error(t, err)
}

func TestReadTrimmed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  abc\n"), 0o600))

	got, err := ReadTrimmed(path)
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	_, err = ReadTrimmed(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, RemoveIfExists(path))
	_, err := os.Stat(path)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, RemoveIfExists(path))
}
