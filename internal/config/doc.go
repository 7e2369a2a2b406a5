// Package config loads runtime settings for the gametracker CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A config file given with -c or -config. Files ending in .yaml or .yml
//     are read as YAML, anything else as JSON.
//  3. Environment variables (GAMETRACKER_* and RAWG_API_KEY).
//  4. Command-line flags.
//
// Flags
//
//	-s string   storage backend: sqlite, redis or memory
//	-d string   SQLite database path
//	-r string   Redis address (host:port)
//	-k string   RAWG API key
//	-l string   log level: debug, info, warn, error
//
// # File format
//
// Durations use timex.Duration, so "5s" and 5000000000 are both accepted:
//
//	storage: sqlite
//	sqlite_path: gametracker.db
//	catalog_timeout: 10s
//	log_level: info
package config
