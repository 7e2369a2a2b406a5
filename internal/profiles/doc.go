// Package profiles is the user directory: the list of local profiles and
// the one currently selected.
//
// The directory owns the users and current_user keys. Deleting a profile
// also removes that profile's library (games:<id>). Every change rewrites
// the full profile list; a device holds a handful of profiles at most.
//
// Storage failures never reach callers. A failed read leaves the directory
// empty; a failed write is logged and the in-memory state is kept.
package profiles
