package reconcile_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shelfsync/internal/books"
	"shelfsync/internal/match"
	"shelfsync/internal/reconcile"
	"shelfsync/internal/testsupport"
)

func newEngine(t *testing.T) (*reconcile.Reconciler, *books.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	matcher := match.NewMatcher(store, cfg, nil)
	return reconcile.NewReconciler(store, matcher, nil), store
}

func TestObserveCreatesUnmatchedRecord(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	record, outcome, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "Project Hail Mary",
		Author:   "Andy Weir",
		Progress: books.Float(0.10),
	})
	if err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if outcome != reconcile.OutcomeCreated {
		t.Errorf("outcome %q, want created", outcome)
	}
	if !record.HasKindle() || record.HasAudible() {
		t.Errorf("expected kindle-only record: %+v", record)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestObserveRefreshesExistingRecord(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	first, _, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "Dune",
		Author:   "Frank Herbert",
		Progress: books.Float(0.20),
	})
	if err != nil {
		t.Fatalf("first Observe failed: %v", err)
	}

	updated, outcome, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "Dune",
		Author:   "Frank Herbert",
		Progress: books.Float(0.35),
		Chapter:  "Muad'Dib",
	})
	if err != nil {
		t.Fatalf("second Observe failed: %v", err)
	}
	if outcome != reconcile.OutcomeUpdated {
		t.Errorf("outcome %q, want updated", outcome)
	}
	if updated.ID != first.ID {
		t.Errorf("refresh changed the id: %q -> %q", first.ID, updated.ID)
	}
	if *updated.KindleProgress != 0.35 || updated.KindleChapter != "Muad'Dib" {
		t.Errorf("progress not refreshed: %+v", updated)
	}

	records, _ := store.List(ctx)
	if len(records) != 1 {
		t.Fatalf("refresh duplicated the record: %d rows", len(records))
	}
}

func TestObserveMergesAcrossPlatforms(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	// Kindle watcher sees the book first.
	_, outcome, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "Project Hail Mary",
		Author:   "Andy Weir",
		Progress: books.Float(0.10),
	})
	if err != nil {
		t.Fatalf("kindle Observe failed: %v", err)
	}
	if outcome != reconcile.OutcomeCreated {
		t.Fatalf("outcome %q, want created", outcome)
	}

	// Audible watcher reports the same book with a noisier title and no
	// author. Title containment plus author leniency produce a match.
	merged, outcome, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformAudible,
		Title:    "Project Hail Mary: A Novel (Unabridged)",
		Author:   "",
		Progress: books.Float(0.08),
		TotalMS:  58_000_000,
	})
	if err != nil {
		t.Fatalf("audible Observe failed: %v", err)
	}
	if outcome != reconcile.OutcomeMerged {
		t.Fatalf("outcome %q, want merged", outcome)
	}

	// The audible title is longer, so it becomes the base; the author comes
	// from the kindle side.
	if merged.Title != "Project Hail Mary: A Novel (Unabridged)" {
		t.Errorf("merged title %q", merged.Title)
	}
	if merged.Author != "Andy Weir" {
		t.Errorf("merged author %q", merged.Author)
	}
	if !merged.MatchedBoth() {
		t.Error("merged record must carry both platforms")
	}
	if *merged.KindleProgress != 0.10 || *merged.AudibleProgress != 0.08 {
		t.Errorf("progress fields lost in merge: %+v", merged)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("merge should leave exactly one record, got %d", len(records))
	}
	if records[0].ID != merged.ID {
		t.Errorf("stored id %q, want %q", records[0].ID, merged.ID)
	}
}

func TestObserveDoesNotMergeDifferentBooks(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	if _, _, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "The Way of Kings",
		Author:   "Brandon Sanderson",
		Progress: books.Float(0.50),
	}); err != nil {
		t.Fatalf("kindle Observe failed: %v", err)
	}

	_, outcome, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformAudible,
		Title:    "The Name of the Wind",
		Author:   "Patrick Rothfuss",
		Progress: books.Float(0.30),
	})
	if err != nil {
		t.Fatalf("audible Observe failed: %v", err)
	}
	if outcome != reconcile.OutcomeCreated {
		t.Errorf("outcome %q, want created for an unrelated book", outcome)
	}

	records, _ := store.List(ctx)
	if len(records) != 2 {
		t.Fatalf("expected 2 independent records, got %d", len(records))
	}
}

func TestObserveClampsProgress(t *testing.T) {
	engine, _ := newEngine(t)

	record, _, err := engine.Observe(context.Background(), reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "Overshoot",
		Author:   "Some Author",
		Progress: books.Float(1.4),
	})
	if err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if *record.KindleProgress != 1.0 {
		t.Errorf("progress %v, want clamped to 1.0", *record.KindleProgress)
	}
}

func TestObserveRejectsBlankTitle(t *testing.T) {
	engine, _ := newEngine(t)

	_, _, err := engine.Observe(context.Background(), reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "   ",
	})
	if err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestConcurrentObservationsCommitOneMerge(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	if _, _, err := engine.Observe(ctx, reconcile.Observation{
		Platform: books.PlatformKindle,
		Title:    "Red Rising",
		Author:   "Pierce Brown",
		Progress: books.Float(0.25),
	}); err != nil {
		t.Fatalf("seed Observe failed: %v", err)
	}

	// Two audible ticks for the same book race; serialization must produce
	// one merge and one refresh, never two competing merged rows.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(fraction float64) {
			defer wg.Done()
			_, _, err := engine.Observe(ctx, reconcile.Observation{
				Platform:   books.PlatformAudible,
				Title:      "Red Rising (Unabridged)",
				Author:     "Pierce Brown",
				Progress:   books.Float(fraction),
				ObservedAt: time.Now().UTC(),
			})
			if err != nil {
				t.Errorf("concurrent Observe failed: %v", err)
			}
		}(0.20 + 0.01*float64(i))
	}
	wg.Wait()

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single consolidated record, got %d", len(records))
	}
	if !records[0].MatchedBoth() {
		t.Error("record should carry both platforms after the race")
	}
}
