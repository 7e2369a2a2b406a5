package storage

import (
	"context"

	"github.com/dmitrijs2005/gametracker/internal/logging"
)

// ReadState tells a caller why a Get returned no value.
type ReadState int

const (
	// Found means the key exists.
	Found ReadState = iota
	// Missing means the key has never been written, or was removed.
	Missing
	// ReadFailed means the backend returned an error. It was logged.
	ReadFailed
)

func (s ReadState) String() string {
	switch s {
	case Found:
		return "found"
	case Missing:
		return "missing"
	case ReadFailed:
		return "read failed"
	default:
		return "unknown"
	}
}

// Adapter is the fail-soft view of a Store that the rest of the app uses.
// Writes that fail are logged and reported as false; the caller keeps its
// in-memory state, so a crash before the next successful write loses the
// change.
type Adapter struct {
	store     Store
	namespace string
	log       logging.Logger
}

// NewAdapter wraps store. Every key is prefixed with namespace.
func NewAdapter(store Store, namespace string, log logging.Logger) *Adapter {
	return &Adapter{store: store, namespace: namespace, log: log.With("component", "storage")}
}

func (a *Adapter) key(k string) string {
	return a.namespace + k
}

// Get returns the value stored under key. The value is nil unless the state
// is Found.
func (a *Adapter) Get(ctx context.Context, key string) ([]byte, ReadState) {
	v, err := a.store.Get(ctx, a.key(key))
	if err != nil {
		a.log.Error(ctx, "storage read failed", "key", key, "err", err)
		return nil, ReadFailed
	}
	if v == nil {
		return nil, Missing
	}
	return v, Found
}

// Set stores value under key and reports whether it was persisted.
func (a *Adapter) Set(ctx context.Context, key string, value []byte) bool {
	if err := a.store.Set(ctx, a.key(key), value); err != nil {
		a.log.Error(ctx, "storage write failed", "key", key, "err", err)
		return false
	}
	return true
}

// Remove deletes key and reports whether the delete reached the backend.
func (a *Adapter) Remove(ctx context.Context, key string) bool {
	if err := a.store.Delete(ctx, a.key(key)); err != nil {
		a.log.Error(ctx, "storage remove failed", "key", key, "err", err)
		return false
	}
	return true
}

// Close closes the underlying store.
func (a *Adapter) Close() error {
	return a.store.Close()
}
