package config

import (
	"flag"

	"github.com/dmitrijs2005/gametracker/internal/flagx"
)

// parseFlags overlays cfg with the flags it owns. Other flags in args are
// ignored so that each loader can share the command line.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-r", "-k", "-l"})

	fs := flag.NewFlagSet("gametracker", flag.ContinueOnError)
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "RAWG API key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
