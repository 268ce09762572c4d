package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when no value exists for a key.
var ErrKeyNotFound = errors.New("key not found")

// Storage keys used by the services. The values are JSON snapshots; every
// mutation rewrites the whole value for its key.
const (
	KeyCurrentUser = "current-user"
	KeyListings    = "listings"
	KeySavedIDs    = "saved-property-ids"
	KeyWelcomed    = "welcomed-flag"
)

// KVStore is the durable persistence abstraction. Implementations provide
// replace-the-value writes with per-key ordering for a single caller; no
// cross-key transactionality is offered or required.
type KVStore interface {
	// Get returns the stored value, or ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
