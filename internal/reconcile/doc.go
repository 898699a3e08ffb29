// Package reconcile turns raw platform observations into consolidated book
// records.
//
// Each observation either refreshes an existing record for its platform,
// triggers a cross-platform merge when an unmatched record from the other
// platform denotes the same book, or creates a fresh single-platform record.
// The whole decide-merge-write sequence runs under one lock so that two
// near-simultaneous observations cannot both claim the same unmatched
// candidate and commit competing merges. Reads outside Observe need no
// locking.
package reconcile
