// Package models defines the records tracked by GameTracker: user profiles
// and the games in a profile's library.
package models
