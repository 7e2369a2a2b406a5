// Package storagetest provides Store doubles for tests in other packages.
package storagetest

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gametracker/internal/storage"
)

// ErrInjected is returned by a Flaky store while a failure is switched on.
var ErrInjected = errors.New("injected storage failure")

// Flaky wraps a Store and fails reads or writes on demand. It counts calls
// so tests can assert that no I/O happened.
type Flaky struct {
	storage.Store

	mu         sync.Mutex
	failReads  bool
	failWrites bool
	reads      int
	writes     int
}

func NewFlaky(inner storage.Store) *Flaky {
	return &Flaky{Store: inner}
}

func (f *Flaky) FailReads(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failReads = v
}

func (f *Flaky) FailWrites(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = v
}

// Reads returns the number of Get calls seen.
func (f *Flaky) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// Writes returns the number of Set and Delete calls seen.
func (f *Flaky) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *Flaky) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	f.reads++
	fail := f.failReads
	f.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return f.Store.Get(ctx, key)
}

func (f *Flaky) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	f.writes++
	fail := f.failWrites
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Store.Set(ctx, key, value)
}

func (f *Flaky) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	f.writes++
	fail := f.failWrites
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Store.Delete(ctx, key)
}
