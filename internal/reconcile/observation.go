package reconcile

import (
	"time"

	"shelfsync/internal/books"
)

// Observation is a single reading/listening signal reported by a platform
// watcher. Title is required; everything else is optional and platform
// watchers send whatever their source exposes.
type Observation struct {
	Platform books.Platform
	Title    string
	Author   string

	// Progress is the fractional position in [0,1]. Nil when the watcher saw
	// activity without a usable position.
	Progress *float64
	Chapter  string
	CoverURL string

	// Kindle-side detail.
	LastPage   int
	TotalPages int

	// Audible-side detail.
	PositionMS int64
	TotalMS    int64

	// ObservedAt defaults to the current time when zero.
	ObservedAt time.Time
}

// Outcome describes what Observe did with an observation.
type Outcome string

const (
	// OutcomeUpdated means an existing record for this platform was refreshed.
	OutcomeUpdated Outcome = "updated"
	// OutcomeMerged means the observation matched an unmatched record from
	// the other platform and the two were consolidated.
	OutcomeMerged Outcome = "merged"
	// OutcomeCreated means a fresh single-platform record was created.
	OutcomeCreated Outcome = "created"
)
