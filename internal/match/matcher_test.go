package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelfsync/internal/books"
	"shelfsync/internal/identity"
)

type fakeLister struct {
	records []*books.BookRecord
	err     error
}

func (f *fakeLister) List(context.Context) ([]*books.BookRecord, error) {
	return f.records, f.err
}

func kindleOnly(title, author string, progress float64) *books.BookRecord {
	now := time.Now().UTC()
	return &books.BookRecord{
		ID:             identity.BookID(title, author),
		Title:          title,
		Author:         author,
		KindleProgress: books.Float(progress),
		KindleLastSync: books.Time(now),
	}
}

func audibleOnly(title, author string, progress float64) *books.BookRecord {
	now := time.Now().UTC()
	return &books.BookRecord{
		ID:              identity.BookID(title, author),
		Title:           title,
		Author:          author,
		AudibleProgress: books.Float(progress),
		AudibleLastSync: books.Time(now),
	}
}

func TestAttemptMatchFindsOppositePlatformRecord(t *testing.T) {
	store := &fakeLister{records: []*books.BookRecord{
		kindleOnly("Project Hail Mary", "Andy Weir", 0.10),
	}}
	m := NewMatcher(store, nil, nil)

	got, err := m.AttemptMatch(context.Background(), "Project Hail Mary: A Novel (Unabridged)", "", books.PlatformAudible)
	if err != nil {
		t.Fatalf("AttemptMatch failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.Title != "Project Hail Mary" {
		t.Errorf("matched wrong record: %q", got.Title)
	}
}

func TestAttemptMatchIgnoresSamePlatformRecords(t *testing.T) {
	store := &fakeLister{records: []*books.BookRecord{
		audibleOnly("Project Hail Mary", "Andy Weir", 0.10),
	}}
	m := NewMatcher(store, nil, nil)

	got, err := m.AttemptMatch(context.Background(), "Project Hail Mary", "Andy Weir", books.PlatformAudible)
	if err != nil {
		t.Fatalf("AttemptMatch failed: %v", err)
	}
	if got != nil {
		t.Fatalf("a same-platform record must not be a candidate, got %q", got.Title)
	}
}

func TestAttemptMatchIgnoresAlreadyMergedRecords(t *testing.T) {
	merged := kindleOnly("Dune", "Frank Herbert", 0.5)
	merged.AudibleProgress = books.Float(0.4)
	merged.AudibleLastSync = merged.KindleLastSync
	store := &fakeLister{records: []*books.BookRecord{merged}}
	m := NewMatcher(store, nil, nil)

	got, err := m.AttemptMatch(context.Background(), "Dune", "Frank Herbert", books.PlatformAudible)
	if err != nil {
		t.Fatalf("AttemptMatch failed: %v", err)
	}
	if got != nil {
		t.Error("two-sided records are not merge candidates")
	}
}

func TestAttemptMatchRequiresBothPredicates(t *testing.T) {
	store := &fakeLister{records: []*books.BookRecord{
		kindleOnly("The Way of Kings", "Brandon Sanderson", 0.2),
	}}
	m := NewMatcher(store, nil, nil)

	// Title matches, author does not.
	got, err := m.AttemptMatch(context.Background(), "The Way of Kings", "Patrick Rothfuss", books.PlatformAudible)
	if err != nil {
		t.Fatalf("AttemptMatch failed: %v", err)
	}
	if got != nil {
		t.Error("author mismatch must block the match")
	}

	// Author matches, title does not.
	got, err = m.AttemptMatch(context.Background(), "Words of Radiance", "Brandon Sanderson", books.PlatformAudible)
	if err != nil {
		t.Fatalf("AttemptMatch failed: %v", err)
	}
	if got != nil {
		t.Error("title mismatch must block the match")
	}
}

func TestAttemptMatchReturnsFirstCandidateInOrder(t *testing.T) {
	first := kindleOnly("The Expanse Book 1", "James Corey", 0.1)
	second := kindleOnly("The Expanse Book 2", "James Corey", 0.2)
	store := &fakeLister{records: []*books.BookRecord{first, second}}
	m := NewMatcher(store, nil, nil)

	// Both candidates pass the predicates ("(book N)" noise strips the
	// numbering); the first in store order wins.
	got, err := m.AttemptMatch(context.Background(), "The Expanse (Book 1)", "James Corey", books.PlatformAudible)
	if err != nil {
		t.Fatalf("AttemptMatch failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.ID != first.ID {
		t.Errorf("expected first candidate in store order, got %q", got.Title)
	}
}

func TestAttemptMatchPropagatesStoreError(t *testing.T) {
	store := &fakeLister{err: errors.New("db closed")}
	m := NewMatcher(store, nil, nil)

	if _, err := m.AttemptMatch(context.Background(), "Dune", "", books.PlatformAudible); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
