package profiles

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gametracker/internal/codec"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/storage"
)

// Directory holds the profiles and the current selection.
type Directory struct {
	kv  *storage.Adapter
	log logging.Logger

	now   func() time.Time
	newID func(time.Time) string

	mu      sync.RWMutex
	users   []models.User
	current *models.User
}

// Option customises a Directory.
type Option func(*Directory)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithIDGenerator replaces the id source. It receives the creation time.
func WithIDGenerator(fn func(time.Time) string) Option {
	return func(d *Directory) { d.newID = fn }
}

// New returns an empty directory. Call Load to read persisted state.
func New(kv *storage.Adapter, log logging.Logger, opts ...Option) *Directory {
	d := &Directory{
		kv:    kv,
		log:   log.With("component", "profiles"),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID: NewMillisIDs().Next,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Load reads the profile list and the current selection in parallel.
// Missing or unreadable values leave the directory empty. The only error is
// the ctx one: a cancelled load leaves the directory untouched.
func (d *Directory) Load(ctx context.Context) error {
	var (
		users   []models.User
		current *models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users = d.readUsers(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		current = d.readCurrent(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = users
	d.current = current
	d.log.Debug(ctx, "profiles loaded", "count", len(users), "current", current != nil)
	return nil
}

func (d *Directory) readUsers(ctx context.Context) []models.User {
	raw, st := d.kv.Get(ctx, storage.KeyUsers)
	if st != storage.Found {
		return nil
	}
	users, err := codec.DecodeUsers(raw)
	if err != nil {
		d.log.Warn(ctx, "ignoring undecodable profile list", "err", err)
		return nil
	}
	return users
}

func (d *Directory) readCurrent(ctx context.Context) *models.User {
	raw, st := d.kv.Get(ctx, storage.KeyCurrentUser)
	if st != storage.Found {
		return nil
	}
	u, err := codec.DecodeUser(raw)
	if err != nil {
		d.log.Warn(ctx, "ignoring undecodable current user", "err", err)
		return nil
	}
	return &u
}

// ListUsers returns the profiles in creation order.
func (d *Directory) ListUsers() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.users)
}

// Current returns the selected profile, or nil when logged out.
func (d *Directory) Current() *models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.current == nil {
		return nil
	}
	u := *d.current
	return &u
}

// CreateUser adds a profile named name. The new profile is not selected.
func (d *Directory) CreateUser(ctx context.Context, name string) (models.User, error) {
	if err := models.ValidateUserName(name); err != nil {
		return models.User{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	created := d.now()
	u := models.User{Id: d.newID(created), Name: strings.TrimSpace(name), CreatedAt: created}
	d.users = append(d.users, u)
	d.saveUsers(ctx)

	d.log.Info(ctx, "profile created", "user_id", u.Id)
	return u, nil
}

// SelectUser makes u the current profile. u is not checked against the
// directory.
func (d *Directory) SelectUser(ctx context.Context, u models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current = &u
	raw, err := codec.EncodeUser(u)
	if err != nil {
		d.log.Error(ctx, "failed to encode current user", "err", err)
		return
	}
	d.kv.Set(ctx, storage.KeyCurrentUser, raw)
}

// DeleteUser removes the profile and its library. If it was the current
// profile the selection is cleared. It reports whether the profile existed.
func (d *Directory) DeleteUser(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.users)
	d.users = slices.DeleteFunc(d.users, func(u models.User) bool { return u.Id == id })
	found := len(d.users) != n

	d.saveUsers(ctx)
	d.kv.Remove(ctx, storage.GamesKey(id))

	if d.current != nil && d.current.Id == id {
		d.clearCurrent(ctx)
	}

	d.log.Info(ctx, "profile deleted", "user_id", id, "existed", found)
	return found
}

// Logout clears the selection. No data is deleted.
func (d *Directory) Logout(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearCurrent(ctx)
}

func (d *Directory) clearCurrent(ctx context.Context) {
	d.current = nil
	d.kv.Remove(ctx, storage.KeyCurrentUser)
}

// saveUsers rewrites the whole list. Callers hold mu.
func (d *Directory) saveUsers(ctx context.Context) {
	raw, err := codec.EncodeUsers(d.users)
	if err != nil {
		d.log.Error(ctx, "failed to encode profiles", "err", err)
		return
	}
	d.kv.Set(ctx, storage.KeyUsers, raw)
}

// MillisIDs issues creation-time ids: the epoch milliseconds of the
// creation, bumped by one when two profiles share a millisecond.
type MillisIDs struct {
	mu   sync.Mutex
	last int64
}

func NewMillisIDs() *MillisIDs {
	return &MillisIDs{}
}

// Next returns an id for a record created at t. Ids are strictly increasing.
func (g *MillisIDs) Next(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := t.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
