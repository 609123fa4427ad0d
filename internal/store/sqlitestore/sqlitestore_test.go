package sqlitestore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/store/sqlitestore"
	"github.com/idilsaglam/todomvc/internal/store/storetest"
)

func TestSQLiteStore(t *testing.T) {
	s, err := sqlitestore.Open(filepath.Join(t.TempDir(), "todos.sqlite"))
	require.NoError(t, err)
	defer s.Close()
	storetest.TestKV(t, s)
}

func TestSQLiteStorePersists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.sqlite")
	s, err := sqlitestore.Open(p)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", []byte(`{"x":true}`)))
	require.NoError(t, s.Close())

	s, err = sqlitestore.Open(p)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":true}`, string(v))
}
