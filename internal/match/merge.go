package match

import (
	"strings"
	"time"

	"shelfsync/internal/books"
	"shelfsync/internal/identity"
)

// MergeEntries consolidates a Kindle-only record and an Audible-only record
// into one two-sided record. Pure; the caller commits the result to storage
// via ReplaceWithMerged.
//
// Base title is the longer raw title (ties keep Kindle's); base author is
// Kindle's when non-blank, else Audible's. The id is re-derived from the base
// pair, so it can differ from both inputs.
func MergeEntries(kindle, audible *books.BookRecord, now time.Time) *books.BookRecord {
	baseTitle := kindle.Title
	if len(audible.Title) > len(kindle.Title) {
		baseTitle = audible.Title
	}

	baseAuthor := kindle.Author
	if strings.TrimSpace(baseAuthor) == "" {
		baseAuthor = audible.Author
	}

	coverURL := audible.CoverURL
	if coverURL == "" {
		coverURL = kindle.CoverURL
	}

	createdAt := kindle.CreatedAt
	if createdAt.IsZero() || (!audible.CreatedAt.IsZero() && audible.CreatedAt.Before(createdAt)) {
		createdAt = audible.CreatedAt
	}

	return &books.BookRecord{
		ID:     identity.BookID(baseTitle, baseAuthor),
		Title:  baseTitle,
		Author: baseAuthor,

		KindleProgress:   kindle.KindleProgress,
		KindleLastPage:   kindle.KindleLastPage,
		KindleTotalPages: kindle.KindleTotalPages,
		KindleChapter:    kindle.KindleChapter,
		KindleLastSync:   kindle.KindleLastSync,

		AudibleProgress:   audible.AudibleProgress,
		AudibleChapter:    audible.AudibleChapter,
		AudiblePositionMS: audible.AudiblePositionMS,
		AudibleTotalMS:    audible.AudibleTotalMS,
		AudibleLastSync:   audible.AudibleLastSync,

		CoverURL:    coverURL,
		LastUpdated: now,
		CreatedAt:   createdAt,
	}
}
