// Package store holds the worker and product lists in memory and mirrors
// them to a skilledhelpers.Storage on every change.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/jsonschema"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ skilledhelpers.WorkerService  = (*Store)(nil)
	_ skilledhelpers.ProductService = (*Store)(nil)
)

// Store implements skilledhelpers.WorkerService and
// skilledhelpers.ProductService over a Storage.
//
// Load must be called before any other method.
type Store struct {
	storage skilledhelpers.Storage

	// NewID generates identities for created records. Defaults to UUIDv7,
	// which orders by creation time.
	NewID func() (string, error)

	mu       sync.RWMutex
	workers  []*skilledhelpers.Worker
	products []*skilledhelpers.Product
	loaded   bool
}

// New returns a Store persisting to storage.
func New(storage skilledhelpers.Storage) *Store {
	return &Store{
		storage: storage,
		NewID:   newUUIDv7,
	}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load reads both lists from storage. A missing list is replaced by the
// seed data, which is written back immediately. A stored list that fails
// shape validation returns ECORRUPT and leaves the store unloaded.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workers, err := loadList(ctx, s.storage, skilledhelpers.WorkersKey, jsonschema.ValidateWorkers, skilledhelpers.SeedWorkers)
	if err != nil {
		return err
	}
	for _, w := range workers {
		if err := w.Validate(); err != nil {
			return corrupt(skilledhelpers.WorkersKey, err)
		}
	}
	if err := uniqueIDs(skilledhelpers.WorkersKey, workers, func(w *skilledhelpers.Worker) string { return w.ID }); err != nil {
		return err
	}

	products, err := loadList(ctx, s.storage, skilledhelpers.ProductsKey, jsonschema.ValidateProducts, skilledhelpers.SeedProducts)
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return corrupt(skilledhelpers.ProductsKey, err)
		}
	}
	if err := uniqueIDs(skilledhelpers.ProductsKey, products, func(p *skilledhelpers.Product) string { return p.ID }); err != nil {
		return err
	}

	s.workers = workers
	s.products = products
	s.loaded = true
	return nil
}

// Reset removes both lists from storage and reloads the seed data.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.storage.Delete(ctx, skilledhelpers.WorkersKey); err != nil {
		return fmt.Errorf("failed to delete workers: %w", err)
	}
	if err := s.storage.Delete(ctx, skilledhelpers.ProductsKey); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return s.Load(ctx)
}

// CreateWorker lists worker ahead of all existing workers and persists
// the list. The in-memory list is only replaced once the write succeeds.
func (s *Store) CreateWorker(ctx context.Context, worker *skilledhelpers.Worker) error {
	if err := worker.Validate(); err != nil {
		return err
	}
	// Stored lists always carry a services array.
	if worker.Services == nil {
		worker.Services = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLoaded(); err != nil {
		return err
	}

	id, err := s.newID(func(id string) bool {
		for _, w := range s.workers {
			if w.ID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}
	worker.ID = id

	next := make([]*skilledhelpers.Worker, 0, len(s.workers)+1)
	next = append(next, worker)
	next = append(next, s.workers...)

	if err := saveList(ctx, s.storage, skilledhelpers.WorkersKey, next); err != nil {
		worker.ID = ""
		return err
	}
	s.workers = next
	return nil
}

// FindWorkers returns the workers matching filter, most recent first.
func (s *Store) FindWorkers(ctx context.Context, filter skilledhelpers.WorkerFilter) ([]*skilledhelpers.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkLoaded(); err != nil {
		return nil, err
	}
	return skilledhelpers.FilterWorkers(s.workers, filter), nil
}

// CreateProduct lists product ahead of all existing products and persists
// the list.
func (s *Store) CreateProduct(ctx context.Context, product *skilledhelpers.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLoaded(); err != nil {
		return err
	}

	id, err := s.newID(func(id string) bool {
		for _, p := range s.products {
			if p.ID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}
	product.ID = id

	next := make([]*skilledhelpers.Product, 0, len(s.products)+1)
	next = append(next, product)
	next = append(next, s.products...)

	if err := saveList(ctx, s.storage, skilledhelpers.ProductsKey, next); err != nil {
		product.ID = ""
		return err
	}
	s.products = next
	return nil
}

// FindProducts returns all products, most recent first.
func (s *Store) FindProducts(ctx context.Context) ([]*skilledhelpers.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkLoaded(); err != nil {
		return nil, err
	}
	out := make([]*skilledhelpers.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) checkLoaded() error {
	if !s.loaded {
		return skilledhelpers.Errorf(skilledhelpers.EINTERNAL, "store not loaded")
	}
	return nil
}

// newID generates an identity not already taken according to exists.
func (s *Store) newID(exists func(string) bool) (string, error) {
	id, err := s.NewID()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	if exists(id) {
		return "", skilledhelpers.Errorf(skilledhelpers.ECONFLICT, "id %q already exists", id)
	}
	return id, nil
}

func loadList[T any](ctx context.Context, storage skilledhelpers.Storage, key string, validate func([]byte) error, seed func() []*T) ([]*T, error) {
	data, err := storage.Get(ctx, key)
	if skilledhelpers.ErrorCode(err) == skilledhelpers.ENOTFOUND {
		items := seed()
		if err := saveList(ctx, storage, key, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := validate(data); err != nil {
		return nil, corrupt(key, err)
	}

	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "stored %s: %v", key, err)
	}
	return items, nil
}

func saveList[T any](ctx context.Context, storage skilledhelpers.Storage, key string, items []*T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := storage.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func uniqueIDs[T any](key string, items []*T, id func(*T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		v := id(item)
		if _, ok := seen[v]; ok {
			return skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "stored %s: duplicate id %q", key, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func corrupt(key string, err error) error {
	return skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "stored %s: %s", key, skilledhelpers.ErrorMessage(err))
}
