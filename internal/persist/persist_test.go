package persist

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/store/memstore"
)

const key = "todomvc.self"

var sample = []model.Entry{
	{Description: "Buy milk"},
	{Description: "Walk dog", Completed: true},
	{Description: "Write tests", Editing: true},
	{Description: "Ship it", Completed: true, Editing: true},
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		path    string
	}{
		{config.BackendFile, filepath.Join(dir, "todos.json")},
		{config.BackendBolt, filepath.Join(dir, "todos.db")},
		{config.BackendSQLite, filepath.Join(dir, "todos.sqlite")},
		{config.BackendMemory, ""},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			kv, err := Open(config.StorageConfig{Backend: tt.backend, Path: tt.path, Key: key})
			require.NoError(t, err)
			defer kv.Close()

			b, err := Encode(sample)
			require.NoError(t, err)
			require.NoError(t, kv.Put(key, b))

			got, err := Restore(kv, key, zap.NewNop())
			require.NoError(t, err)
			if diff := cmp.Diff(sample, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpenUnavailable(t *testing.T) {
	_, err := Open(config.StorageConfig{Backend: config.BackendBolt, Path: t.TempDir()})
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)

	_, err = Open(config.StorageConfig{Backend: "redis"})
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestEncodeLayout(t *testing.T) {
	b, err := Encode([]model.Entry{{Description: "a", Completed: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"description":"a","completed":true,"editing":false}]`, string(b))

	b, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestRestoreMissing(t *testing.T) {
	got, err := Restore(memstore.New(), key, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRestoreMalformed(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":    "{{{",
		"wrong type": `{"description":"a"}`,
		"null":       "null",
	} {
		t.Run(name, func(t *testing.T) {
			kv := memstore.New()
			require.NoError(t, kv.Put(key, []byte(raw)))
			got, err := Restore(kv, key, zap.NewNop())
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

type failingKV struct {
	store.KV
	getErr error
	putErr error
}

func (f failingKV) Get(string) ([]byte, error) { return nil, f.getErr }
func (f failingKV) Put(string, []byte) error   { return f.putErr }

func TestRestoreCorruptBackend(t *testing.T) {
	kv := failingKV{getErr: store.ErrCorrupt}
	got, err := Restore(kv, key, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestoreReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Restore(failingKV{getErr: boom}, key, zap.NewNop())
	assert.ErrorIs(t, err, boom)
}

func TestWriterFlushesOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	kv := memstore.New()
	w := NewWriter(kv, key, nil)
	w.Save(sample[:1])
	w.Save(sample)
	require.NoError(t, w.Close())

	got, err := Restore(kv, key, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestWriterReportsLastError(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("read-only")
	w := NewWriter(failingKV{putErr: boom}, key, nil)
	w.Save(sample)
	assert.ErrorIs(t, w.Close(), boom)
	// a second Close is harmless
	assert.ErrorIs(t, w.Close(), boom)
}

func TestWriterDropsSaveAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	kv := memstore.New()
	w := NewWriter(kv, key, nil)
	require.NoError(t, w.Close())
	w.Save(sample)

	_, err := kv.Get(key)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// countingKV counts puts so the test can see coalescing without relying on
// timing.
type countingKV struct {
	store.KV
	mu   sync.Mutex
	puts int
}

func (c *countingKV) Put(k string, v []byte) error {
	c.mu.Lock()
	c.puts++
	c.mu.Unlock()
	return c.KV.Put(k, v)
}

func TestWriterAsManagerListener(t *testing.T) {
	defer goleak.VerifyNone(t)

	kv := &countingKV{KV: memstore.New()}
	w := NewWriter(kv, key, nil)

	m := state.NewManager(state.New(nil), nil)
	m.Subscribe(w.Save)
	for _, d := range []string{"one", "two", "three"} {
		m.Dispatch(state.Update{Value: d})
		m.Dispatch(state.Add{})
	}
	m.Dispatch(state.Toggle{Index: 1})
	require.NoError(t, w.Close())

	got, err := Restore(kv, key, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, m.State().Entries, got)

	kv.mu.Lock()
	defer kv.mu.Unlock()
	assert.GreaterOrEqual(t, kv.puts, 1)
	assert.LessOrEqual(t, kv.puts, 4)
}
