package library

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gametracker/internal/codec"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/storage"
)

// Collection is the in-memory library of one user, kept in most-recent-first
// order and written back to storage after every change.
type Collection struct {
	kv   *storage.Adapter
	log  logging.Logger
	user models.User

	now   func() time.Time
	newID func() string
	seed  func(time.Time) []models.Game

	mu    sync.RWMutex
	games []models.Game
}

// Option customises a Collection.
type Option func(*Collection)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Collection) { c.now = now }
}

// WithIDGenerator replaces the game id source.
func WithIDGenerator(fn func() string) Option {
	return func(c *Collection) { c.newID = fn }
}

// WithSeed replaces the first-run library. nil disables seeding.
func WithSeed(fn func(time.Time) []models.Game) Option {
	return func(c *Collection) { c.seed = fn }
}

// Open loads the library of user. It never fails: unreadable data yields an
// empty collection.
func Open(ctx context.Context, kv *storage.Adapter, user models.User, log logging.Logger, opts ...Option) *Collection {
	c := &Collection{
		kv:    kv,
		log:   log.With("component", "library", "user_id", user.Id),
		user:  user,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID: uuid.NewString,
		seed:  DemoGames,
	}
	for _, o := range opts {
		o(c)
	}
	c.load(ctx)
	return c
}

func (c *Collection) load(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, st := c.kv.Get(ctx, storage.GamesKey(c.user.Id))
	switch st {
	case storage.Found:
		games, err := codec.DecodeGames(raw)
		if err != nil {
			c.log.Warn(ctx, "ignoring undecodable library", "err", err)
			return
		}
		c.games = games
	case storage.Missing:
		if c.seed == nil {
			return
		}
		c.games = c.seed(c.now())
		c.persist(ctx)
		c.log.Info(ctx, "seeded first-run library", "count", len(c.games))
	case storage.ReadFailed:
		// already logged by the adapter; start empty and do not seed over
		// data we could not read
	}
}

// User returns the owner of the collection.
func (c *Collection) User() models.User {
	return c.user
}

// persist rewrites the full collection. Callers hold mu.
func (c *Collection) persist(ctx context.Context) bool {
	raw, err := codec.EncodeGames(c.games)
	if err != nil {
		c.log.Error(ctx, "failed to encode library", "err", err)
		return false
	}
	return c.kv.Set(ctx, storage.GamesKey(c.user.Id), raw)
}

func (c *Collection) indexOf(id string) int {
	return slices.IndexFunc(c.games, func(g models.Game) bool { return g.Id == id })
}

func (c *Collection) uniqueID() string {
	for {
		id := c.newID()
		if c.indexOf(id) < 0 {
			return id
		}
	}
}

// AddGame validates f, assigns an id and the added date, and puts the new
// game first.
func (c *Collection) AddGame(ctx context.Context, f models.GameFields) (models.Game, error) {
	if err := f.Validate(); err != nil {
		return models.Game{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	g := models.NewGame(c.uniqueID(), f, c.now())
	c.games = slices.Insert(c.games, 0, g)
	c.persist(ctx)

	c.log.Debug(ctx, "game added", "game_id", g.Id)
	return g.Clone(), nil
}

// UpdateGame merges u into the game with the given id. It reports false if
// there is no such game. An invalid update changes nothing.
func (c *Collection) UpdateGame(ctx context.Context, id string, u models.GameUpdate) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	updated, err := c.games[i].Apply(u, c.now())
	if err != nil {
		return true, err
	}
	c.games[i] = updated
	c.persist(ctx)
	return true, nil
}

// DeleteGame removes the game and reports whether it existed.
func (c *Collection) DeleteGame(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.games = slices.Delete(c.games, i, i+1)
	c.persist(ctx)
	return true
}

// MoveToBacklog marks the game unplayed, dropping its rating and
// completion date.
func (c *Collection) MoveToBacklog(ctx context.Context, id string) bool {
	return c.mutate(ctx, id, func(g *models.Game) { g.MoveToBacklog() })
}

// MoveToPlayed marks the game played, completed now.
func (c *Collection) MoveToPlayed(ctx context.Context, id string) bool {
	now := c.now()
	return c.mutate(ctx, id, func(g *models.Game) { g.MoveToPlayed(now) })
}

func (c *Collection) mutate(ctx context.Context, id string, fn func(*models.Game)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&c.games[i])
	c.persist(ctx)
	return true
}

// Game returns a copy of the game with the given id.
func (c *Collection) Game(id string) (models.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.Game{}, false
	}
	return c.games[i].Clone(), true
}

// Games returns every game, most recently added first.
func (c *Collection) Games() []models.Game {
	return c.filter(func(models.Game) bool { return true })
}

// PlayedGames returns the played games in collection order.
func (c *Collection) PlayedGames() []models.Game {
	return c.filter(func(g models.Game) bool { return g.Status == models.StatusPlayed })
}

// BacklogGames returns the backlog in collection order.
func (c *Collection) BacklogGames() []models.Game {
	return c.filter(func(g models.Game) bool { return g.Status == models.StatusBacklog })
}

func (c *Collection) filter(keep func(models.Game) bool) []models.Game {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Game, 0, len(c.games))
	for _, g := range c.games {
		if keep(g) {
			out = append(out, g.Clone())
		}
	}
	return out
}
