package storage

import (
	"context"
)

// Store is a byte-oriented key-value store.
//
// Get returns (nil, nil) for a key that does not exist. Delete of a missing
// key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
