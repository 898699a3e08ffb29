package progress

import (
	"fmt"
	"math"

	"shelfsync/internal/books"
)

// AudibleEstimate is a suggested audiobook resume point derived from e-book
// progress.
type AudibleEstimate struct {
	PositionMS  int64
	Fraction    float64
	Description string
}

// KindleEstimate is a suggested e-book resume point derived from audiobook
// progress. Page is nil when the total page count is unknown.
type KindleEstimate struct {
	Page        *int
	Fraction    float64
	Description string
}

// EstimateAudiblePosition interpolates the Kindle progress fraction onto the
// audiobook timeline. Requires KindleProgress and a positive AudibleTotalMS;
// returns nil otherwise.
func EstimateAudiblePosition(record *books.BookRecord) *AudibleEstimate {
	if record == nil || record.KindleProgress == nil || record.AudibleTotalMS <= 0 {
		return nil
	}
	fraction := *record.KindleProgress
	positionMS := int64(math.Round(fraction * float64(record.AudibleTotalMS)))
	return &AudibleEstimate{
		PositionMS: positionMS,
		Fraction:   fraction,
		Description: fmt.Sprintf("Resume at %s / %s",
			FormatDuration(positionMS), FormatDuration(record.AudibleTotalMS)),
	}
}

// EstimateKindlePosition interpolates the Audible progress fraction onto the
// e-book page range. Requires AudibleProgress; returns nil otherwise. When
// the total page count is unknown the estimate degrades to a percentage.
func EstimateKindlePosition(record *books.BookRecord) *KindleEstimate {
	if record == nil || record.AudibleProgress == nil {
		return nil
	}
	fraction := *record.AudibleProgress

	if record.KindleTotalPages > 0 {
		page := int(math.Round(fraction * float64(record.KindleTotalPages)))
		if page < 1 {
			page = 1
		}
		return &KindleEstimate{
			Page:        &page,
			Fraction:    fraction,
			Description: fmt.Sprintf("Resume at page %d of %d", page, record.KindleTotalPages),
		}
	}

	return &KindleEstimate{
		Fraction:    fraction,
		Description: fmt.Sprintf("Resume at ~%d%%", int(math.Round(fraction*100))),
	}
}

// FormatDuration renders a millisecond count as "1h 5m", "3m 20s", or "45s"
// depending on magnitude.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
