package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"toolbox/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	return NewFileStore(filepath.Join(t.TempDir(), "nested", "state.yaml"), logger)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := newTestFileStore(t)

	v, ok, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	s := newTestFileStore(t)

	require.NoError(t, s.Set(KeyTheme, "dark"))
	require.NoError(t, s.Set(KeyFavorites, "[3,1]"))

	v, ok, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// A fresh store on the same path sees the same values (simulated restart).
	logger, _ := logging.NewTestLogger()
	reopened := NewFileStore(s.Path(), logger)
	v, ok, err = reopened.Get(KeyFavorites)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[3,1]", v)
}

func TestFileStore_FilePermissionsAndNoTempLeftovers(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, s.Set(KeyTheme, "light"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0o077, "state file should be private, got %o", info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should be renamed or removed")
}

func TestFileStore_CorruptFile(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("::: not: [yaml"), 0o600))

	_, _, err := s.Get(KeyTheme)
	require.Error(t, err)
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "read", serr.Op)
	assert.Equal(t, KeyTheme, serr.Key)

	// Writing replaces the corrupt file.
	require.NoError(t, s.Set(KeyTheme, "dark"))
	v, ok, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestFileStore_EmptyFile(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), nil, 0o600))

	_, ok, err := s.Get(KeyFavorites)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	logger, _ := logging.NewTestLogger()
	// Parent "directory" is a regular file, so MkdirAll fails.
	s := NewFileStore(filepath.Join(blocker, "state.yaml"), logger)

	err := s.Set(KeyTheme, "dark")
	require.Error(t, err)
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "write", serr.Op)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	_, ok, err := m.Get(KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(KeyTheme, "dark"))
	v, ok, _ := m.Get(KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	boom := errors.New("disk full")
	m.FailWrites = boom
	err = m.Set(KeyTheme, "light")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, map[string]string{KeyTheme: "dark"}, m.Snapshot())
}
