package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/storage"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, storage.BackendSQLite, c.StorageBackend)
	assert.Equal(t, "gametracker.db", c.SQLitePath)
	assert.Equal(t, storage.DefaultNamespace, c.Namespace)
	assert.Equal(t, catalog.DefaultBaseURL, c.CatalogURL)
	assert.Equal(t, catalog.DefaultPageSize, c.PageSize)
	assert.Empty(t, c.APIKey)
	assert.Zero(t, c.CatalogTimeout)
}

func TestLoad_NoSources(t *testing.T) {
	assert.Empty(t, cmp.Diff(defaults(), Load(nil)))
}

func TestParseFile(t *testing.T) {
	yamlPath := writeFile(t, "cfg.yaml", `
storage: redis
redis_addr: cache:6379
redis_db: 2
catalog_timeout: 7s
log_format: json
`)
	jsonPath := writeFile(t, "cfg.json", `{"sqlite_path":"/data/games.db","page_size":20,"catalog_timeout":1000000000}`)

	t.Run("yaml", func(t *testing.T) {
		c := defaults()
		parseFile(c, []string{"-c", yamlPath})
		assert.Equal(t, "redis", c.StorageBackend)
		assert.Equal(t, "cache:6379", c.RedisAddr)
		assert.Equal(t, 2, c.RedisDB)
		assert.Equal(t, 7*time.Second, c.CatalogTimeout)
		assert.Equal(t, "json", c.LogFormat)
		// untouched keys keep their defaults
		assert.Equal(t, "gametracker.db", c.SQLitePath)
	})

	t.Run("json", func(t *testing.T) {
		c := defaults()
		parseFile(c, []string{"-config", jsonPath})
		assert.Equal(t, "/data/games.db", c.SQLitePath)
		assert.Equal(t, 20, c.PageSize)
		assert.Equal(t, time.Second, c.CatalogTimeout)
		assert.Equal(t, storage.BackendSQLite, c.StorageBackend)
	})

	t.Run("no file", func(t *testing.T) {
		c := defaults()
		parseFile(c, []string{"-s", "memory"})
		assert.Empty(t, cmp.Diff(defaults(), c))
	})

	t.Run("malformed panics", func(t *testing.T) {
		bad := writeFile(t, "bad.json", `{ nope`)
		require.Panics(t, func() { parseFile(defaults(), []string{"-c", bad}) })
	})

	t.Run("missing panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(defaults(), []string{"-c", "/nonexistent/cfg.yaml"}) })
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("RAWG_API_KEY", "from-env")
	t.Setenv("GAMETRACKER_STORAGE", "memory")
	t.Setenv("GAMETRACKER_CATALOG_TIMEOUT", "3s")

	c := defaults()
	parseEnv(c)
	assert.Equal(t, "from-env", c.APIKey)
	assert.Equal(t, "memory", c.StorageBackend)
	assert.Equal(t, 3*time.Second, c.CatalogTimeout)
	assert.Equal(t, "gametracker.db", c.SQLitePath)

	t.Setenv("GAMETRACKER_PAGE_SIZE", "many")
	require.Panics(t, func() { parseEnv(defaults()) })
}

func TestParseFlags(t *testing.T) {
	c := defaults()
	parseFlags(c, []string{"-s", "redis", "-r", "10.0.0.1:6380", "-k", "flag-key", "-l", "debug", "-x", "ignored"})

	assert.Equal(t, "redis", c.StorageBackend)
	assert.Equal(t, "10.0.0.1:6380", c.RedisAddr)
	assert.Equal(t, "flag-key", c.APIKey)
	assert.Equal(t, "debug", c.LogLevel)

	require.Panics(t, func() { parseFlags(defaults(), []string{"-k"}) })
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.yml", "api_key: from-file\nsqlite_path: file.db\nlog_level: warn\n")
	t.Setenv("RAWG_API_KEY", "from-env")
	t.Setenv("GAMETRACKER_LOG_LEVEL", "error")

	c := Load([]string{"-c", path, "-l", "debug"})
	assert.Equal(t, "file.db", c.SQLitePath)
	assert.Equal(t, "from-env", c.APIKey)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestOptions(t *testing.T) {
	c := defaults()
	c.RedisPassword = "pw"
	c.CatalogTimeout = time.Second

	so := c.StorageOptions()
	assert.Equal(t, c.RedisAddr, so.Redis.Addr)
	assert.Equal(t, "pw", so.Redis.Password)
	assert.Equal(t, c.SQLitePath, so.SQLitePath)

	co := c.CatalogOptions()
	assert.Equal(t, time.Second, co.Timeout)
	assert.Equal(t, c.PageSize, co.PageSize)

	assert.Equal(t, c.LogLevel, c.LoggingOptions().Level)
}
