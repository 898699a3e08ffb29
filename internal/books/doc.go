// Package books defines the consolidated book record and its SQLite-backed
// store.
//
// A BookRecord carries progress for up to two platforms: an e-reader side
// tracked in pages and an audiobook side tracked in milliseconds. A record
// observed from only one platform has every field of the other platform
// absent; that single-platform shape is what makes it a merge candidate for
// the opposite platform.
//
// Merging two single-platform records re-derives the record id from the
// merged title/author, so the store exposes ReplaceWithMerged, which removes
// the source rows and inserts the merged row in one transaction. All other
// mutations are full-record upserts keyed by id.
package books
