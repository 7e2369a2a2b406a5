package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gametracker/internal/codec"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/storage"
	"github.com/dmitrijs2005/gametracker/internal/storage/storagetest"
)

var base = time.UnixMilli(1_700_000_000_000).UTC()

type fixture struct {
	mem   *storage.MemoryStore
	flaky *storagetest.Flaky
	kv    *storage.Adapter
	clock time.Time
}

func newFixture() *fixture {
	mem := storage.NewMemoryStore()
	flaky := storagetest.NewFlaky(mem)
	return &fixture{
		mem:   mem,
		flaky: flaky,
		kv:    storage.NewAdapter(flaky, storage.DefaultNamespace, logging.Nop()),
		clock: base,
	}
}

func (f *fixture) directory(t *testing.T) *Directory {
	t.Helper()
	d := New(f.kv, logging.Nop(), WithClock(func() time.Time {
		f.clock = f.clock.Add(time.Millisecond)
		return f.clock
	}))
	require.NoError(t, d.Load(context.Background()))
	return d
}

func TestCreateUser_AppendsAndPersists(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	ctx := context.Background()

	alice, err := d.CreateUser(ctx, "Alice")
	require.NoError(t, err)
	bob, err := d.CreateUser(ctx, "  Bob ")
	require.NoError(t, err)

	assert.NotEqual(t, alice.Id, bob.Id)
	assert.Equal(t, "Bob", bob.Name)
	assert.Equal(t, []models.User{alice, bob}, d.ListUsers())
	assert.Nil(t, d.Current(), "creating a profile must not select it")

	reloaded := f.directory(t)
	assert.Equal(t, []models.User{alice, bob}, reloaded.ListUsers())
}

func TestCreateUser_RejectsBlankNamesWithoutIO(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	writes := f.flaky.Writes()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := d.CreateUser(context.Background(), name)
		require.ErrorIs(t, err, models.ErrValidation)
	}
	assert.Empty(t, d.ListUsers())
	assert.Equal(t, writes, f.flaky.Writes())
}

func TestSelectUser_SurvivesRestart(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	ctx := context.Background()

	alice, err := d.CreateUser(ctx, "Alice")
	require.NoError(t, err)
	d.SelectUser(ctx, alice)
	require.Equal(t, &alice, d.Current())

	reloaded := f.directory(t)
	require.NotNil(t, reloaded.Current())
	assert.Equal(t, alice, *reloaded.Current())
}

func TestSelectUser_NoExistenceCheck(t *testing.T) {
	f := newFixture()
	d := f.directory(t)

	ghost := models.User{Id: "ghost", Name: "Ghost", CreatedAt: base}
	d.SelectUser(context.Background(), ghost)
	assert.Equal(t, &ghost, d.Current())
	assert.Empty(t, d.ListUsers())
}

func TestDeleteUser_CascadesAndClearsCurrent(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	ctx := context.Background()

	alice, _ := d.CreateUser(ctx, "Alice")
	bob, _ := d.CreateUser(ctx, "Bob")
	d.SelectUser(ctx, alice)
	require.True(t, f.kv.Set(ctx, storage.GamesKey(alice.Id), []byte(`[]`)))
	require.True(t, f.kv.Set(ctx, storage.GamesKey(bob.Id), []byte(`[]`)))

	require.True(t, d.DeleteUser(ctx, alice.Id))

	assert.Equal(t, []models.User{bob}, d.ListUsers())
	assert.Nil(t, d.Current())

	_, st := f.kv.Get(ctx, storage.GamesKey(alice.Id))
	assert.Equal(t, storage.Missing, st)
	_, st = f.kv.Get(ctx, storage.GamesKey(bob.Id))
	assert.Equal(t, storage.Found, st)
	_, st = f.kv.Get(ctx, storage.KeyCurrentUser)
	assert.Equal(t, storage.Missing, st)

	reloaded := f.directory(t)
	assert.Equal(t, []models.User{bob}, reloaded.ListUsers())
	assert.Nil(t, reloaded.Current())
}

func TestDeleteUser_OtherUserKeepsCurrent(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	ctx := context.Background()

	alice, _ := d.CreateUser(ctx, "Alice")
	bob, _ := d.CreateUser(ctx, "Bob")
	d.SelectUser(ctx, alice)

	d.DeleteUser(ctx, bob.Id)
	assert.Equal(t, &alice, d.Current())
	assert.False(t, d.DeleteUser(ctx, "missing"))
}

func TestLogout_KeepsData(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	ctx := context.Background()

	alice, _ := d.CreateUser(ctx, "Alice")
	d.SelectUser(ctx, alice)
	d.Logout(ctx)

	assert.Nil(t, d.Current())
	assert.Len(t, d.ListUsers(), 1)
	assert.Nil(t, f.directory(t).Current())
}

func TestLoad_DegradesOnReadFailureAndGarbage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.True(t, f.kv.Set(ctx, storage.KeyUsers, []byte(`{not json`)))

	d := f.directory(t)
	assert.Empty(t, d.ListUsers())

	f.flaky.FailReads(true)
	d = f.directory(t)
	assert.Empty(t, d.ListUsers())
	assert.Nil(t, d.Current())
}

func TestLoad_CancelledKeepsPreviousState(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	alice, err := d.CreateUser(context.Background(), "Alice")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, d.Load(ctx), context.Canceled)
	assert.Equal(t, []models.User{alice}, d.ListUsers())
}

func TestLoad_ReadsLegacyValues(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.True(t, f.kv.Set(ctx, storage.KeyUsers,
		[]byte(`[{"id":"1699000000000","name":"Legacy","createdAt":1699000000000}]`)))
	require.True(t, f.kv.Set(ctx, storage.KeyCurrentUser,
		[]byte(`{"id":"1699000000000","name":"Legacy","createdAt":1699000000000}`)))

	d := f.directory(t)
	require.Len(t, d.ListUsers(), 1)
	require.NotNil(t, d.Current())
	assert.Equal(t, "Legacy", d.Current().Name)
}

func TestWriteFailure_KeepsMemoryState(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	f.flaky.FailWrites(true)

	u, err := d.CreateUser(context.Background(), "Offline")
	require.NoError(t, err)
	assert.Equal(t, []models.User{u}, d.ListUsers())

	f.flaky.FailWrites(false)
	assert.Empty(t, f.directory(t).ListUsers(), "the failed write was not persisted")
}

func TestMillisIDs_StrictlyIncreasing(t *testing.T) {
	g := NewMillisIDs()
	a := g.Next(base)
	b := g.Next(base)
	c := g.Next(base.Add(-time.Second))
	assert.Equal(t, "1700000000000", a)
	assert.Equal(t, "1700000000001", b)
	assert.Equal(t, "1700000000002", c)
}

func TestPersistedFormatIsVersioned(t *testing.T) {
	f := newFixture()
	d := f.directory(t)
	_, err := d.CreateUser(context.Background(), "Alice")
	require.NoError(t, err)

	raw, st := f.kv.Get(context.Background(), storage.KeyUsers)
	require.Equal(t, storage.Found, st)
	users, err := codec.DecodeUsers(raw)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Contains(t, string(raw), `"schema":1`)
}
