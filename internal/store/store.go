// Package store defines the key-value contract the persistence layer writes
// through. Backends live in subpackages.
package store

import "errors"

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// ErrCorrupt is returned when the backing data cannot be decoded at all.
var ErrCorrupt = errors.New("store: corrupt data")

// KV is a minimal byte-oriented key-value store.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}
