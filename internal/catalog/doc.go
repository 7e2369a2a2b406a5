// Package catalog looks games up in the RAWG metadata service.
//
// Lookups are advisory. Nothing in the library depends on them; a caller
// merges a result into a new game explicitly (see Summary.Enrich).
//
// # Errors
//
//   - ErrNotConfigured: no API key (or the placeholder key). Detected before
//     any request is made, so the UI can ask for a key instead of reporting a
//     network problem. A key the service rejects also matches ErrInvalidAPIKey.
//   - ErrUnavailable: transport failure, unexpected status or unreadable
//     body. The UI should offer manual entry.
//   - ErrNotFound: FetchDetails for an id the service does not know.
//   - ErrSuperseded: a Lookup result that a newer request replaced.
//
// A search with no matches is an empty slice and a nil error.
package catalog
