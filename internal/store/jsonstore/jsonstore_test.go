package jsonstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/store/jsonstore"
	"github.com/idilsaglam/todomvc/internal/store/storetest"
)

func TestJSONStore(t *testing.T) {
	s, err := jsonstore.Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	storetest.TestKV(t, s)
}

func TestOpenDirectoryUsesDefaultName(t *testing.T) {
	dir := t.TempDir()
	s, err := jsonstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", []byte(`true`)))

	_, err = os.Stat(filepath.Join(dir, jsonstore.DefaultFileName))
	assert.NoError(t, err)
}

func TestOpenCreatesParentDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "deeper", "todos.json")
	s, err := jsonstore.Open(p)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", []byte(`true`)))

	_, err = os.Stat(p)
	assert.NoError(t, err)
}

func TestEmptyFileIsEmptyStore(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	s, err := jsonstore.Open(p)
	require.NoError(t, err)
	_, err = s.Get("k")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestCorruptFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o644))

	s, err := jsonstore.Open(p)
	require.NoError(t, err)

	_, err = s.Get("k")
	assert.True(t, errors.Is(err, store.ErrCorrupt), "got %v", err)

	require.NoError(t, s.Put("k", []byte(`[]`)))
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v))
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	s, err := jsonstore.Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)
	assert.Error(t, s.Put("k", []byte("nope")))
}

func TestPersistsAcrossOpen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")
	s, err := jsonstore.Open(p)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", []byte(`{"a":1}`)))

	s2, err := jsonstore.Open(p)
	require.NoError(t, err)
	v, err := s2.Get("k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(v))
}
