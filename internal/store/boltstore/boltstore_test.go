package boltstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/store/boltstore"
	"github.com/idilsaglam/todomvc/internal/store/storetest"
)

func mustOpen(t *testing.T, path string) *boltstore.Store {
	t.Helper()
	s, err := boltstore.Open(path)
	require.NoError(t, err)
	return s
}

func TestBoltStore(t *testing.T) {
	s := mustOpen(t, filepath.Join(t.TempDir(), "todos.db"))
	defer s.Close()
	storetest.TestKV(t, s)
}

func TestBoltStorePersists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.db")
	s := mustOpen(t, p)
	require.NoError(t, s.Put("k", []byte(`[]`)))
	require.NoError(t, s.Close())

	s = mustOpen(t, p)
	defer s.Close()
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))
}

func TestBoltStoreOpenOnDirectoryFails(t *testing.T) {
	_, err := boltstore.Open(t.TempDir())
	assert.Error(t, err)
}
