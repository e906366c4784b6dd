package skilledhelpers

import "context"

// Storage keys. The suffix is bumped whenever the stored shape changes
// incompatibly; there is no migration between versions.
const (
	WorkersKey  = "skilledHelpers_workers_v1"
	ProductsKey = "skilledHelpers_products_v1"
)

// Storage is a key-value store holding serialized lists.
type Storage interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
