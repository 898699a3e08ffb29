package api

import (
	"shelfsync/internal/books"
	"shelfsync/internal/progress"
)

// FromBookRecord converts a record to its API representation, attaching the
// derived sync and resume views where the record has enough data to compute
// them. syncThreshold follows the engine's configured drift threshold.
func FromBookRecord(record *books.BookRecord, syncThreshold float64) BookView {
	if record == nil {
		return BookView{}
	}

	view := BookView{
		ID:       record.ID,
		Title:    record.Title,
		Author:   record.Author,
		CoverURL: record.CoverURL,
	}
	if !record.LastUpdated.IsZero() {
		view.LastUpdated = record.LastUpdated.UTC().Format(dateTimeFormat)
	}

	if record.HasKindle() {
		side := &KindleSide{
			LastPage:   record.KindleLastPage,
			TotalPages: record.KindleTotalPages,
			Chapter:    record.KindleChapter,
		}
		if record.KindleProgress != nil {
			side.Progress = *record.KindleProgress
		}
		if record.KindleLastSync != nil {
			side.LastSync = record.KindleLastSync.UTC().Format(dateTimeFormat)
		}
		view.Kindle = side
	}

	if record.HasAudible() {
		side := &AudibleSide{
			Chapter:    record.AudibleChapter,
			PositionMS: record.AudiblePositionMS,
			TotalMS:    record.AudibleTotalMS,
		}
		if record.AudibleProgress != nil {
			side.Progress = *record.AudibleProgress
		}
		if record.AudibleLastSync != nil {
			side.LastSync = record.AudibleLastSync.UTC().Format(dateTimeFormat)
		}
		view.Audible = side
	}

	if delta := progress.ComputeSyncDelta(record, syncThreshold); delta != nil {
		view.Sync = &SyncStatusView{
			Synced:      delta.Synced,
			Ahead:       delta.Ahead.String(),
			Percent:     delta.Percent,
			Description: delta.Description,
		}
	}

	resume := &ResumeView{}
	if estimate := progress.EstimateAudiblePosition(record); estimate != nil {
		resume.Audible = &AudibleResume{
			PositionMS:  estimate.PositionMS,
			Description: estimate.Description,
		}
	}
	if estimate := progress.EstimateKindlePosition(record); estimate != nil {
		kr := &KindleResume{Description: estimate.Description}
		if estimate.Page != nil {
			kr.Page = *estimate.Page
		}
		resume.Kindle = kr
	}
	if resume.Audible != nil || resume.Kindle != nil {
		view.Resume = resume
	}

	return view
}

// FromBookRecords converts a slice of records into API DTOs.
func FromBookRecords(records []*books.BookRecord, syncThreshold float64) []BookView {
	if len(records) == 0 {
		return nil
	}
	out := make([]BookView, 0, len(records))
	for _, record := range records {
		out = append(out, FromBookRecord(record, syncThreshold))
	}
	return out
}

// FromStats converts store statistics to the API shape.
func FromStats(stats books.Stats) LibraryStats {
	return LibraryStats{
		Total:       stats.Total,
		KindleOnly:  stats.KindleOnly,
		AudibleOnly: stats.AudibleOnly,
		Matched:     stats.Matched,
	}
}
