package match

import (
	"context"
	"fmt"
	"log/slog"

	"shelfsync/internal/books"
	"shelfsync/internal/config"
	"shelfsync/internal/identity"
	"shelfsync/internal/logging"
)

// recordLister abstracts the store read the matcher needs.
type recordLister interface {
	List(ctx context.Context) ([]*books.BookRecord, error)
}

// Matcher searches unmatched records from the opposite platform for an
// incoming observation.
type Matcher struct {
	store       recordLister
	logger      *slog.Logger
	maxRatio    float64
	minTokenLen int
}

// Option customises the Matcher.
type Option func(*Matcher)

// WithMaxEditDistanceRatio overrides the title edit-distance tolerance.
func WithMaxEditDistanceRatio(ratio float64) Option {
	return func(m *Matcher) {
		if ratio > 0 {
			m.maxRatio = ratio
		}
	}
}

// WithSharedTokenLength overrides the author surname-token length.
func WithSharedTokenLength(length int) Option {
	return func(m *Matcher) {
		if length > 0 {
			m.minTokenLen = length
		}
	}
}

// NewMatcher constructs a matcher bound to the supplied store and configuration.
func NewMatcher(store recordLister, cfg *config.Config, logger *slog.Logger, opts ...Option) *Matcher {
	m := &Matcher{
		store:       store,
		logger:      logging.NewComponentLogger(logger, "match"),
		maxRatio:    0.30,
		minTokenLen: 4,
	}
	if cfg != nil {
		if cfg.Matching.MaxEditDistanceRatio > 0 {
			m.maxRatio = cfg.Matching.MaxEditDistanceRatio
		}
		if cfg.Matching.SharedTokenLength > 0 {
			m.minTokenLen = cfg.Matching.SharedTokenLength
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AttemptMatch looks for an existing record from the platform opposite source
// that denotes the same book as the incoming title/author. Candidates are
// single-platform records only; the first qualifying candidate in store order
// is returned. A nil record with a nil error means no candidate qualified,
// which is the expected common case.
func (m *Matcher) AttemptMatch(ctx context.Context, title, author string, source books.Platform) (*books.BookRecord, error) {
	records, err := m.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	incomingTitle := identity.NormalizeTitle(title)
	incomingAuthor := identity.NormalizeAuthor(author)

	for _, candidate := range records {
		if !candidate.CandidateFor(source) {
			continue
		}
		candidateTitle := identity.NormalizeTitle(candidate.Title)
		if !TitlesMatch(incomingTitle, candidateTitle, m.maxRatio) {
			continue
		}
		if !AuthorsMatch(incomingAuthor, identity.NormalizeAuthor(candidate.Author), m.minTokenLen) {
			continue
		}
		m.logger.Info("cross-platform match found",
			logging.String("source", source.String()),
			logging.String("incoming_title", title),
			logging.String("candidate_id", candidate.ID),
			logging.String("candidate_title", candidate.Title),
		)
		return candidate, nil
	}
	return nil, nil
}
