// Package bolt provides a bbolt-backed key-value Storage.
package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/skilledhelpers"
	bolt "go.etcd.io/bbolt"
)

// Ensure Storage implements skilledhelpers.Storage.
var _ skilledhelpers.Storage = (*Storage)(nil)

var bucket = []byte("skilledhelpers")

// Storage keeps every key in a single bucket of a bbolt file.
type Storage struct {
	db *bolt.DB
}

// Open opens or creates the database file at path.
func Open(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database file.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return skilledhelpers.Errorf(skilledhelpers.ENOTFOUND, "key %q not found", key)
		}
		// v is only valid inside the transaction.
		value = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
