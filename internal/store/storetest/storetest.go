// Package storetest keeps common tests for store.KV implementations.
package storetest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/store"
)

// TestKV runs the conformance suite against kv. Values are JSON documents
// so that backends storing JSON natively can run it too.
func TestKV(t *testing.T, kv store.KV) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		_, err := kv.Get("missing")
		assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, kv.Put("k1", []byte(`[{"description":"a"}]`)))
		v, err := kv.Get("k1")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"description":"a"}]`, string(v))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, kv.Put("k2", []byte(`[1]`)))
		require.NoError(t, kv.Put("k2", []byte(`[2,3]`)))
		v, err := kv.Get("k2")
		require.NoError(t, err)
		assert.JSONEq(t, `[2,3]`, string(v))
	})

	t.Run("independent keys", func(t *testing.T) {
		require.NoError(t, kv.Put("a", []byte(`"x"`)))
		require.NoError(t, kv.Put("b", []byte(`"y"`)))
		va, err := kv.Get("a")
		require.NoError(t, err)
		vb, err := kv.Get("b")
		require.NoError(t, err)
		assert.JSONEq(t, `"x"`, string(va))
		assert.JSONEq(t, `"y"`, string(vb))
	})

	t.Run("caller mutation is isolated", func(t *testing.T) {
		buf := []byte(`"abc"`)
		require.NoError(t, kv.Put("iso", buf))
		buf[1] = 'z'
		v, err := kv.Get("iso")
		require.NoError(t, err)
		assert.JSONEq(t, `"abc"`, string(v))
	})
}
