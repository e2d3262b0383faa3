package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KeyValueRepository.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KeyValueRepository persists opaque blobs under string keys.
// It models extension-style local storage: one serialized record per key.
type KeyValueRepository interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or replaces the blob stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
