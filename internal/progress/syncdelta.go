package progress

import (
	"fmt"
	"math"

	"shelfsync/internal/books"
)

// DefaultSyncThreshold is the absolute progress difference below which the
// two platforms are considered in sync.
const DefaultSyncThreshold = 0.05

// SyncDelta reports drift between the two platforms' progress fractions.
type SyncDelta struct {
	// Delta is kindle minus audible; positive means Kindle is ahead.
	Delta       float64
	Percent     int
	Ahead       books.Platform
	Synced      bool
	Description string
}

// ComputeSyncDelta compares the two platforms' progress for a record.
// Requires both fractions; returns nil otherwise. A threshold of zero or
// less falls back to DefaultSyncThreshold.
func ComputeSyncDelta(record *books.BookRecord, threshold float64) *SyncDelta {
	if record == nil || record.KindleProgress == nil || record.AudibleProgress == nil {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultSyncThreshold
	}

	delta := *record.KindleProgress - *record.AudibleProgress
	absDelta := math.Abs(delta)
	percent := int(math.Round(absDelta * 100))

	result := &SyncDelta{
		Delta:   delta,
		Percent: percent,
	}
	switch {
	case absDelta < threshold:
		result.Synced = true
		result.Description = "In sync"
	case delta > 0:
		result.Ahead = books.PlatformKindle
		result.Description = fmt.Sprintf("Kindle is %d%% ahead", percent)
	default:
		result.Ahead = books.PlatformAudible
		result.Description = fmt.Sprintf("Audible is %d%% ahead", percent)
	}
	return result
}
