package books

import (
	"fmt"
	"strings"
	"time"
)

// Platform identifies the source of an observation.
type Platform string

const (
	PlatformKindle  Platform = "kindle"
	PlatformAudible Platform = "audible"
)

// Opposite returns the other platform.
func (p Platform) Opposite() Platform {
	if p == PlatformKindle {
		return PlatformAudible
	}
	return PlatformKindle
}

func (p Platform) String() string { return string(p) }

// ParsePlatform converts user input to a Platform.
func ParsePlatform(value string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "kindle":
		return PlatformKindle, nil
	case "audible":
		return PlatformAudible, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected kindle or audible)", value)
	}
}

// BookRecord is the single persisted entity: one book, with progress from
// whichever platforms have reported it. Pointer fields model absence.
type BookRecord struct {
	ID     string
	Title  string
	Author string

	KindleProgress   *float64
	KindleLastPage   int
	KindleTotalPages int
	KindleChapter    string
	KindleLastSync   *time.Time

	AudibleProgress   *float64
	AudibleChapter    string
	AudiblePositionMS int64
	AudibleTotalMS    int64
	AudibleLastSync   *time.Time

	CoverURL    string
	LastUpdated time.Time
	CreatedAt   time.Time
}

// HasKindle reports whether any Kindle-side data has been observed.
func (r *BookRecord) HasKindle() bool {
	return r != nil && (r.KindleProgress != nil || r.KindleLastSync != nil)
}

// HasAudible reports whether any Audible-side data has been observed.
func (r *BookRecord) HasAudible() bool {
	return r != nil && (r.AudibleProgress != nil || r.AudibleLastSync != nil)
}

// HasPlatform reports whether data from the given platform is present.
func (r *BookRecord) HasPlatform(p Platform) bool {
	if p == PlatformKindle {
		return r.HasKindle()
	}
	return r.HasAudible()
}

// MatchedBoth reports whether both platforms have contributed data.
func (r *BookRecord) MatchedBoth() bool {
	return r.HasKindle() && r.HasAudible()
}

// CandidateFor reports whether the record is a merge candidate for an
// observation arriving from the given platform: it carries data from the
// opposite platform and none from the observing one.
func (r *BookRecord) CandidateFor(p Platform) bool {
	return r.HasPlatform(p.Opposite()) && !r.HasPlatform(p)
}

// Float is a convenience constructor for optional progress fractions.
func Float(v float64) *float64 { return &v }

// Time is a convenience constructor for optional timestamps.
func Time(v time.Time) *time.Time { return &v }
