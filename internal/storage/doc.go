// Package storage provides the key-value persistence used by GameTracker.
//
// # Overview
//
// Backends implement Store, a strict interface that reports every failure:
//
//   - SQLiteStore: a single-table SQLite database (modernc.org/sqlite),
//     schema applied by embedded goose migrations
//   - RedisStore: a Redis instance via go-redis
//   - MemoryStore: a process-local map
//
// Callers above this package do not talk to a Store directly. They use an
// Adapter, which namespaces keys and is fail-soft: a failed read is logged
// and reported as absent, a failed write or remove is logged and reported
// as false. Nothing from the backend propagates as an error.
//
// # Key layout
//
//	users: list of profiles
//	current_user: the selected profile, absent when logged out
//	games:<userId>: one profile's library
//
// All keys are prefixed with the adapter namespace ("@game_tracker:" by
// default).
package storage
