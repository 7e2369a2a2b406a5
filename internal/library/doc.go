// Package library manages one profile's game collection.
//
// A Collection is opened for a single user and reads games:<userId> once.
// If that key has never been written, the collection is seeded with a small
// demonstration library and persisted, so a new profile starts with
// something to look at. A collection that was emptied by the user stays
// empty.
//
// Every mutation rewrites the whole collection. The in-memory copy is
// authoritative: a failed write is logged and the change is kept.
//
// Played and backlog views are filtered on every call.
package library
