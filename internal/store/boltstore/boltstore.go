// Package boltstore keeps key-value pairs in a single bbolt bucket.
package boltstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/idilsaglam/todomvc/internal/store"
)

const bucketTodos = "todomvc"

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path. It fails if another process
// holds the file lock for more than a second.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketTodos))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketTodos))
		v := b.Get([]byte(key))
		if v == nil {
			return store.ErrNotFound
		}
		// v is only valid inside the transaction
		value = append([]byte(nil), v...)
		return nil
	})
	return value, err
}

func (s *Store) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketTodos))
		return b.Put([]byte(key), append([]byte(nil), value...))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
