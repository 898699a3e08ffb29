package testsupport

import (
	"context"
	"testing"
	"time"

	"shelfsync/internal/books"
	"shelfsync/internal/config"
	"shelfsync/internal/identity"
)

// MustOpenStore opens a books.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *books.Store {
	t.Helper()

	store, err := books.Open(cfg)
	if err != nil {
		t.Fatalf("books.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedKindle inserts a Kindle-only record for tests and returns it.
func SeedKindle(t testing.TB, store *books.Store, title, author string, progress float64) *books.BookRecord {
	t.Helper()

	now := time.Now().UTC()
	record := &books.BookRecord{
		ID:             identity.BookID(title, author),
		Title:          title,
		Author:         author,
		KindleProgress: books.Float(progress),
		KindleLastSync: books.Time(now),
		LastUpdated:    now,
	}
	if err := store.Upsert(context.Background(), record); err != nil {
		t.Fatalf("seed kindle record: %v", err)
	}
	return record
}

// SeedAudible inserts an Audible-only record for tests and returns it.
func SeedAudible(t testing.TB, store *books.Store, title, author string, progress float64) *books.BookRecord {
	t.Helper()

	now := time.Now().UTC()
	record := &books.BookRecord{
		ID:              identity.BookID(title, author),
		Title:           title,
		Author:          author,
		AudibleProgress: books.Float(progress),
		AudibleLastSync: books.Time(now),
		LastUpdated:     now,
	}
	if err := store.Upsert(context.Background(), record); err != nil {
		t.Fatalf("seed audible record: %v", err)
	}
	return record
}
