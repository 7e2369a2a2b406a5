package catalog

import (
	"context"
	"sync"
)

// Source is what Lookup needs from a catalog client.
type Source interface {
	Search(ctx context.Context, title string) ([]Summary, error)
	FetchDetails(ctx context.Context, id int) (*Details, error)
}

// Lookup serialises lookups per request kind the way a search box needs:
// starting a search cancels the one in flight, and a response that arrives
// after a newer request started is dropped with ErrSuperseded.
type Lookup struct {
	src Source

	mu      sync.Mutex
	search  generation
	details generation
}

type generation struct {
	n      uint64
	cancel context.CancelFunc
}

func NewLookup(src Source) *Lookup {
	return &Lookup{src: src}
}

// begin cancels the previous request of this kind and starts a new one.
func (l *Lookup) begin(ctx context.Context, g *generation) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	g.n++
	g.cancel = cancel
	return ctx, g.n
}

// end reports whether n is still the latest request and releases it if so.
func (l *Lookup) end(g *generation, n uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if g.n != n {
		return false
	}
	g.cancel()
	g.cancel = nil
	return true
}

// Search runs src.Search as the latest search.
func (l *Lookup) Search(ctx context.Context, title string) ([]Summary, error) {
	ctx, n := l.begin(ctx, &l.search)
	res, err := l.src.Search(ctx, title)
	if !l.end(&l.search, n) {
		return nil, ErrSuperseded
	}
	return res, err
}

// FetchDetails runs src.FetchDetails as the latest details request.
func (l *Lookup) FetchDetails(ctx context.Context, id int) (*Details, error) {
	ctx, n := l.begin(ctx, &l.details)
	res, err := l.src.FetchDetails(ctx, id)
	if !l.end(&l.details, n) {
		return nil, ErrSuperseded
	}
	return res, err
}
