// Package redis provides a Redis-backed key-value Storage.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/skilledhelpers"
	"github.com/redis/go-redis/v9"
)

// Ensure Storage implements skilledhelpers.Storage.
var _ skilledhelpers.Storage = (*Storage)(nil)

// DefaultPrefix namespaces keys when several apps share one Redis database.
const DefaultPrefix = "skilledhelpers:"

// Options configures the connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a client and verifies the connection with a ping.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, skilledhelpers.Errorf(skilledhelpers.EUNAVAILABLE, "redis ping failed: %v", err)
	}
	return client, nil
}

// Storage stores each key as a Redis string under a prefix.
type Storage struct {
	client redis.UniversalClient
	prefix string
}

// NewStorage creates a new Storage. An empty prefix stores keys as given.
func NewStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{client: client, prefix: prefix}
}

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, skilledhelpers.Errorf(skilledhelpers.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key without expiry.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}
