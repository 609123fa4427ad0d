// Package persist connects the todo list to a key-value backend: it opens
// the configured store, restores the entry list at startup, and writes it
// back after every change.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/store/boltstore"
	"github.com/idilsaglam/todomvc/internal/store/jsonstore"
	"github.com/idilsaglam/todomvc/internal/store/memstore"
	"github.com/idilsaglam/todomvc/internal/store/sqlitestore"
)

// ErrUnavailable wraps any failure to open the configured backend.
var ErrUnavailable = errors.New("storage unavailable")

// Open returns the backend named by cfg.Backend.
func Open(cfg config.StorageConfig) (store.KV, error) {
	var (
		kv  store.KV
		err error
	)
	switch cfg.Backend {
	case config.BackendFile:
		kv, err = jsonstore.Open(cfg.Path)
	case config.BackendBolt:
		kv, err = boltstore.Open(cfg.Path)
	case config.BackendSQLite:
		kv, err = sqlitestore.Open(cfg.Path)
	case config.BackendMemory:
		kv = memstore.New()
	default:
		err = fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return kv, nil
}

// Encode serializes entries in the persisted layout.
func Encode(entries []model.Entry) ([]byte, error) {
	if entries == nil {
		entries = []model.Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Restore loads the entry list stored under key. A missing or undecodable
// value yields an empty list; only read failures are returned.
func Restore(kv store.KV, key string, logger *zap.Logger) ([]model.Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b, err := kv.Get(key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Debug("no saved entries", zap.String("key", key))
		return []model.Entry{}, nil
	case errors.Is(err, store.ErrCorrupt):
		logger.Warn("saved entries unreadable, starting empty", zap.String("key", key), zap.Error(err))
		return []model.Entry{}, nil
	case err != nil:
		return nil, fmt.Errorf("restore %q: %w", key, err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		logger.Warn("saved entries malformed, starting empty", zap.String("key", key), zap.Error(err))
		return []model.Entry{}, nil
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	logger.Debug("restored entries", zap.String("key", key), zap.Int("count", len(entries)))
	return entries, nil
}
