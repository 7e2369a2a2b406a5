// Package tracker is the session: the profile directory, the library of the
// selected profile, and the catalog lookups, behind one operation surface.
package tracker

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/library"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/profiles"
	"github.com/dmitrijs2005/gametracker/internal/storage"
)

var ErrNoCurrentUser = errors.New("no profile selected")

// Tracker serves every user-facing operation. The library of the current
// profile is opened on selection and dropped on logout or deletion.
type Tracker struct {
	kv      *storage.Adapter
	dir     *profiles.Directory
	catalog *catalog.Client
	lookup  *catalog.Lookup
	log     logging.Logger

	profileOpts []profiles.Option
	libraryOpts []library.Option

	mu     sync.RWMutex
	active *library.Collection
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithProfileOptions passes options to the profile directory.
func WithProfileOptions(opts ...profiles.Option) Option {
	return func(t *Tracker) { t.profileOpts = append(t.profileOpts, opts...) }
}

// WithLibraryOptions passes options to every collection the tracker opens.
func WithLibraryOptions(opts ...library.Option) Option {
	return func(t *Tracker) { t.libraryOpts = append(t.libraryOpts, opts...) }
}

// New loads the directory and, if a profile was selected in a previous run,
// its library.
func New(ctx context.Context, kv *storage.Adapter, cat *catalog.Client, log logging.Logger, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		kv:      kv,
		catalog: cat,
		lookup:  catalog.NewLookup(cat),
		log:     log,
	}
	for _, o := range opts {
		o(t)
	}

	t.dir = profiles.New(kv, log, t.profileOpts...)
	if err := t.dir.Load(ctx); err != nil {
		return nil, err
	}
	if u := t.dir.Current(); u != nil {
		t.active = library.Open(ctx, kv, *u, log, t.libraryOpts...)
	}
	return t, nil
}

func (t *Tracker) ListUsers() []models.User {
	return t.dir.ListUsers()
}

// CurrentUser returns the selected profile, or nil.
func (t *Tracker) CurrentUser() *models.User {
	return t.dir.Current()
}

func (t *Tracker) CreateUser(ctx context.Context, name string) (models.User, error) {
	return t.dir.CreateUser(ctx, name)
}

// SelectUser switches to u and opens its library.
func (t *Tracker) SelectUser(ctx context.Context, u models.User) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dir.SelectUser(ctx, u)
	t.active = library.Open(ctx, t.kv, u, t.log, t.libraryOpts...)
}

// DeleteUser removes the profile and its games.
func (t *Tracker) DeleteUser(ctx context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	found := t.dir.DeleteUser(ctx, id)
	if t.active != nil && t.active.User().Id == id {
		t.active = nil
	}
	return found
}

func (t *Tracker) Logout(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dir.Logout(ctx)
	t.active = nil
}

// withCollection runs fn on the current library. The read lock is held for
// the whole call so a profile switch or deletion waits for in-flight writes.
func (t *Tracker) withCollection(fn func(*library.Collection) error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.active == nil {
		return ErrNoCurrentUser
	}
	return fn(t.active)
}

// ListGames returns the current library, newest first. It is empty when no
// profile is selected.
func (t *Tracker) ListGames() []models.Game {
	return t.view((*library.Collection).Games)
}

func (t *Tracker) PlayedGames() []models.Game {
	return t.view((*library.Collection).PlayedGames)
}

func (t *Tracker) BacklogGames() []models.Game {
	return t.view((*library.Collection).BacklogGames)
}

func (t *Tracker) view(fn func(*library.Collection) []models.Game) []models.Game {
	games := []models.Game{}
	_ = t.withCollection(func(c *library.Collection) error {
		games = fn(c)
		return nil
	})
	return games
}

// Game returns one game of the current library.
func (t *Tracker) Game(id string) (g models.Game, ok bool) {
	_ = t.withCollection(func(c *library.Collection) error {
		g, ok = c.Game(id)
		return nil
	})
	return g, ok
}

func (t *Tracker) AddGame(ctx context.Context, f models.GameFields) (g models.Game, err error) {
	err = t.withCollection(func(c *library.Collection) error {
		g, err = c.AddGame(ctx, f)
		return err
	})
	return g, err
}

// AddFromCatalog adds a search hit with the given status.
func (t *Tracker) AddFromCatalog(ctx context.Context, s catalog.Summary, status models.GameStatus) (models.Game, error) {
	f := models.GameFields{Status: status}
	s.Enrich(&f)
	return t.AddGame(ctx, f)
}

func (t *Tracker) UpdateGame(ctx context.Context, id string, u models.GameUpdate) (found bool, err error) {
	err = t.withCollection(func(c *library.Collection) error {
		found, err = c.UpdateGame(ctx, id, u)
		return err
	})
	return found, err
}

func (t *Tracker) DeleteGame(ctx context.Context, id string) (found bool, err error) {
	err = t.withCollection(func(c *library.Collection) error {
		found = c.DeleteGame(ctx, id)
		return nil
	})
	return found, err
}

func (t *Tracker) MoveToBacklog(ctx context.Context, id string) (found bool, err error) {
	err = t.withCollection(func(c *library.Collection) error {
		found = c.MoveToBacklog(ctx, id)
		return nil
	})
	return found, err
}

func (t *Tracker) MoveToPlayed(ctx context.Context, id string) (found bool, err error) {
	err = t.withCollection(func(c *library.Collection) error {
		found = c.MoveToPlayed(ctx, id)
		return nil
	})
	return found, err
}

// Search queries the catalog. A search started while another is in flight
// cancels it.
func (t *Tracker) Search(ctx context.Context, title string) ([]catalog.Summary, error) {
	return t.lookup.Search(ctx, title)
}

func (t *Tracker) FetchDetails(ctx context.Context, id int) (*catalog.Details, error) {
	return t.lookup.FetchDetails(ctx, id)
}

// SetAPIKey replaces the catalog key for the rest of the session.
func (t *Tracker) SetAPIKey(key string) {
	t.catalog.SetAPIKey(key)
}

// CatalogConfigured reports whether catalog lookups can be attempted.
func (t *Tracker) CatalogConfigured() bool {
	return t.catalog.Configured()
}
