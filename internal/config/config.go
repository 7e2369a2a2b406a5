package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/storage"
)

// Config holds runtime settings.
type Config struct {
	StorageBackend string `env:"GAMETRACKER_STORAGE"`
	SQLitePath     string `env:"GAMETRACKER_SQLITE_PATH"`
	RedisAddr      string `env:"GAMETRACKER_REDIS_ADDR"`
	RedisPassword  string `env:"GAMETRACKER_REDIS_PASSWORD"`
	RedisDB        int    `env:"GAMETRACKER_REDIS_DB"`
	// Namespace prefixes every persisted key.
	Namespace string `env:"GAMETRACKER_NAMESPACE"`

	APIKey         string        `env:"RAWG_API_KEY"`
	CatalogURL     string        `env:"GAMETRACKER_CATALOG_URL"`
	PageSize       int           `env:"GAMETRACKER_PAGE_SIZE"`
	CatalogTimeout time.Duration `env:"GAMETRACKER_CATALOG_TIMEOUT"`

	LogLevel  string `env:"GAMETRACKER_LOG_LEVEL"`
	LogFormat string `env:"GAMETRACKER_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = storage.BackendSQLite
	c.SQLitePath = "gametracker.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.Namespace = storage.DefaultNamespace
	c.CatalogURL = catalog.DefaultBaseURL
	c.PageSize = catalog.DefaultPageSize
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// LoadConfig builds a Config from defaults, the config file, the environment
// and os.Args, in that order. It panics if a source is malformed.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load is LoadConfig with explicit arguments.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

// StorageOptions returns the settings storage.Open needs.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:    c.StorageBackend,
		SQLitePath: c.SQLitePath,
		Redis: storage.RedisOptions{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
	}
}

// CatalogOptions returns the settings catalog.NewClient needs.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		BaseURL:  c.CatalogURL,
		APIKey:   c.APIKey,
		PageSize: c.PageSize,
		Timeout:  c.CatalogTimeout,
	}
}

// LoggingOptions returns the settings logging.New needs.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}
}
