package storage_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/storage"
	"github.com/dmitrijs2005/gametracker/internal/storage/storagetest"
)

func TestAdapter_NamespacesKeys(t *testing.T) {
	mem := storage.NewMemoryStore()
	a := storage.NewAdapter(mem, storage.DefaultNamespace, logging.Nop())
	ctx := context.Background()

	require.True(t, a.Set(ctx, storage.GamesKey("42"), []byte("[]")))
	raw, err := mem.Get(ctx, "@game_tracker:games:42")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), raw)

	v, st := a.Get(ctx, storage.GamesKey("42"))
	assert.Equal(t, storage.Found, st)
	assert.Equal(t, []byte("[]"), v)

	require.True(t, a.Remove(ctx, storage.GamesKey("42")))
	v, st = a.Get(ctx, storage.GamesKey("42"))
	assert.Equal(t, storage.Missing, st)
	assert.Nil(t, v)
}

func TestAdapter_FailuresAreLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	flaky := storagetest.NewFlaky(storage.NewMemoryStore())
	a := storage.NewAdapter(flaky, "", log)
	ctx := context.Background()

	require.True(t, a.Set(ctx, "users", []byte("x")))

	flaky.FailReads(true)
	flaky.FailWrites(true)

	v, st := a.Get(ctx, "users")
	assert.Nil(t, v)
	assert.Equal(t, storage.ReadFailed, st)
	assert.False(t, a.Set(ctx, "users", []byte("y")))
	assert.False(t, a.Remove(ctx, "users"))

	out := buf.String()
	assert.Contains(t, out, "storage read failed")
	assert.Contains(t, out, "storage write failed")
	assert.Contains(t, out, "storage remove failed")
	assert.Contains(t, out, "component=storage")

	flaky.FailReads(false)
	v, st = a.Get(ctx, "users")
	assert.Equal(t, storage.Found, st)
	assert.Equal(t, []byte("x"), v)
}

func TestReadState_String(t *testing.T) {
	assert.Equal(t, "found", storage.Found.String())
	assert.Equal(t, "missing", storage.Missing.String())
	assert.Equal(t, "read failed", storage.ReadFailed.String())
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	s, err := storage.Open(ctx, storage.Options{Backend: storage.BackendMemory})
	require.NoError(t, err)
	_, ok := s.(*storage.MemoryStore)
	assert.True(t, ok)

	s, err = storage.Open(ctx, storage.Options{Backend: storage.BackendSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	_, ok = s.(*storage.SQLiteStore)
	assert.True(t, ok)
	require.NoError(t, s.Close())

	s, err = storage.Open(ctx, storage.Options{Backend: storage.BackendRedis, Redis: storage.RedisOptions{Addr: "127.0.0.1:1"}})
	require.NoError(t, err)
	_, ok = s.(*storage.RedisStore)
	assert.True(t, ok)
	require.NoError(t, s.Close())

	_, err = storage.Open(ctx, storage.Options{Backend: "etcd"})
	require.Error(t, err)
}
