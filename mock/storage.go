package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/skilledhelpers"
)

var _ skilledhelpers.Storage = (*Storage)(nil)

// Storage is a mock implementation of skilledhelpers.Storage.
type Storage struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.GetFn(ctx, key)
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.SetFn(ctx, key, value)
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}

// NewMemoryStorage returns a Storage backed by a map, preloaded with data.
// The returned map is shared with the storage so tests can inspect writes.
func NewMemoryStorage(data map[string][]byte) (*Storage, map[string][]byte) {
	if data == nil {
		data = make(map[string][]byte)
	}
	var mu sync.Mutex
	return &Storage{
		GetFn: func(_ context.Context, key string) ([]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return nil, skilledhelpers.Errorf(skilledhelpers.ENOTFOUND, "key %q not found", key)
			}
			return append([]byte(nil), v...), nil
		},
		SetFn: func(_ context.Context, key string, value []byte) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = append([]byte(nil), value...)
			return nil
		},
		DeleteFn: func(_ context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, key)
			return nil
		},
	}, data
}
