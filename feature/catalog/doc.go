// Package catalog manages the canonical set of game records.
//
// Games enter the catalog two ways: direct curation through the CRUD surface,
// or resolution of an external provider id. Resolution treats the catalog as
// a read-through cache keyed by external id (fetch only on miss) and
// reconciles fetched metadata against pre-seeded rows by unique title using a
// fill-empty-only merge, so an external fetch never clobbers curated data.
//
// The catalog is shared and user-independent; the library feature references
// games read-only.
package catalog
