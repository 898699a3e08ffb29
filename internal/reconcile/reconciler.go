package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"shelfsync/internal/books"
	"shelfsync/internal/identity"
	"shelfsync/internal/logging"
	"shelfsync/internal/match"
)

// bookStore abstracts the persistence operations the reconciler needs.
type bookStore interface {
	List(ctx context.Context) ([]*books.BookRecord, error)
	Upsert(ctx context.Context, record *books.BookRecord) error
	ReplaceWithMerged(ctx context.Context, merged *books.BookRecord, oldIDs ...string) error
}

// matchNotifier receives cross-platform match events. Failures are logged,
// never propagated; a missed push must not fail a merge.
type matchNotifier interface {
	NotifyMatchFound(ctx context.Context, title, author string) error
}

// Reconciler applies observations to the book library.
type Reconciler struct {
	store    bookStore
	matcher  *match.Matcher
	notifier matchNotifier
	logger   *slog.Logger

	// mu serializes the decide-merge-write sequence. Two concurrent
	// observations of the same book from opposite platforms must not both
	// see the other side as an unmatched candidate.
	mu sync.Mutex
}

// Option customises the Reconciler.
type Option func(*Reconciler)

// WithNotifier attaches a match notification sink.
func WithNotifier(n matchNotifier) Option {
	return func(r *Reconciler) {
		if n != nil {
			r.notifier = n
		}
	}
}

// NewReconciler constructs a reconciler around the supplied store and matcher.
func NewReconciler(store bookStore, matcher *match.Matcher, logger *slog.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:   store,
		matcher: matcher,
		logger:  logging.NewComponentLogger(logger, "reconcile"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observe applies a single platform observation: refresh, merge, or create.
// The returned record reflects what was committed to storage.
func (r *Reconciler) Observe(ctx context.Context, obs Observation) (*books.BookRecord, Outcome, error) {
	if strings.TrimSpace(obs.Title) == "" {
		return nil, "", errors.New("observation title is required")
	}
	if obs.Platform != books.PlatformKindle && obs.Platform != books.PlatformAudible {
		return nil, "", fmt.Errorf("unknown platform %q", obs.Platform)
	}
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = time.Now().UTC()
	}
	if obs.Progress != nil {
		clamped := clampFraction(*obs.Progress)
		obs.Progress = &clamped
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list records: %w", err)
	}

	// Repeat observation from the same platform: plain refresh, no matching.
	if existing := findExisting(records, obs); existing != nil {
		applyObservation(existing, obs)
		existing.LastUpdated = obs.ObservedAt
		if err := r.store.Upsert(ctx, existing); err != nil {
			return nil, "", fmt.Errorf("refresh record: %w", err)
		}
		r.logger.Debug("progress refreshed",
			logging.String("id", existing.ID),
			logging.String("platform", obs.Platform.String()),
			logging.String("title", existing.Title),
		)
		return existing, OutcomeUpdated, nil
	}

	candidate, err := r.matcher.AttemptMatch(ctx, obs.Title, obs.Author, obs.Platform)
	if err != nil {
		return nil, "", fmt.Errorf("attempt match: %w", err)
	}
	if candidate != nil {
		return r.merge(ctx, obs, candidate)
	}

	record := newRecord(obs)
	if err := r.store.Upsert(ctx, record); err != nil {
		return nil, "", fmt.Errorf("create record: %w", err)
	}
	r.logger.Info("new book tracked",
		logging.String("id", record.ID),
		logging.String("platform", obs.Platform.String()),
		logging.String("title", record.Title),
	)
	return record, OutcomeCreated, nil
}

func (r *Reconciler) merge(ctx context.Context, obs Observation, candidate *books.BookRecord) (*books.BookRecord, Outcome, error) {
	incoming := newRecord(obs)

	var merged *books.BookRecord
	if obs.Platform == books.PlatformKindle {
		merged = match.MergeEntries(incoming, candidate, obs.ObservedAt)
	} else {
		merged = match.MergeEntries(candidate, incoming, obs.ObservedAt)
	}

	if err := r.store.ReplaceWithMerged(ctx, merged, candidate.ID, incoming.ID); err != nil {
		return nil, "", fmt.Errorf("commit merge: %w", err)
	}
	r.logger.Info("records merged",
		logging.String("id", merged.ID),
		logging.String("title", merged.Title),
		logging.String("candidate_id", candidate.ID),
		logging.String("source", obs.Platform.String()),
	)

	if r.notifier != nil {
		if err := r.notifier.NotifyMatchFound(ctx, merged.Title, merged.Author); err != nil {
			r.logger.Warn("match notification failed", logging.Error(err))
		}
	}
	return merged, OutcomeMerged, nil
}

// findExisting locates a record already carrying this platform's data for the
// same normalized title. Both unmatched and merged records qualify; either
// way the observation is a refresh, not a match trigger.
func findExisting(records []*books.BookRecord, obs Observation) *books.BookRecord {
	title := identity.NormalizeTitle(obs.Title)
	for _, record := range records {
		if !record.HasPlatform(obs.Platform) {
			continue
		}
		if identity.NormalizeTitle(record.Title) == title {
			return record
		}
	}
	return nil
}

func newRecord(obs Observation) *books.BookRecord {
	record := &books.BookRecord{
		ID:          identity.BookID(obs.Title, obs.Author),
		Title:       displayTitle(obs.Title),
		Author:      strings.TrimSpace(obs.Author),
		CoverURL:    obs.CoverURL,
		LastUpdated: obs.ObservedAt,
	}
	applyObservation(record, obs)
	return record
}

// applyObservation writes the observation's platform side onto the record,
// leaving the other side untouched.
func applyObservation(record *books.BookRecord, obs Observation) {
	switch obs.Platform {
	case books.PlatformKindle:
		if obs.Progress != nil {
			record.KindleProgress = obs.Progress
		}
		if obs.LastPage > 0 {
			record.KindleLastPage = obs.LastPage
		}
		if obs.TotalPages > 0 {
			record.KindleTotalPages = obs.TotalPages
		}
		if obs.Chapter != "" {
			record.KindleChapter = obs.Chapter
		}
		record.KindleLastSync = books.Time(obs.ObservedAt)
	case books.PlatformAudible:
		if obs.Progress != nil {
			record.AudibleProgress = obs.Progress
		}
		if obs.PositionMS > 0 {
			record.AudiblePositionMS = obs.PositionMS
		}
		if obs.TotalMS > 0 {
			record.AudibleTotalMS = obs.TotalMS
		}
		if obs.Chapter != "" {
			record.AudibleChapter = obs.Chapter
		}
		record.AudibleLastSync = books.Time(obs.ObservedAt)
	}
	if obs.CoverURL != "" && record.CoverURL == "" {
		record.CoverURL = obs.CoverURL
	}
	record.LastUpdated = obs.ObservedAt
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
