// Package library manages per-user game tracking records.
//
// Each entry ties one user to one catalog game with tracking data (status,
// score, notes, favorite flag, hours played). Exactly one entry exists per
// (user, game) pair; the upsert primitive is idempotent by that key.
//
// Entries can be created against a known catalog game id, or against an
// external provider id, in which case the catalog feature resolves (and if
// needed fetches and caches) the game first. The catalog-then-library write
// is not atomic: a crash between game creation and entry upsert leaves a
// valid standalone catalog game and no dangling reference.
package library
