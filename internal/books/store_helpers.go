package books

import (
	"database/sql"
	"time"
)

const bookColumns = "id, title, author, kindle_progress, kindle_last_page, kindle_total_pages, kindle_chapter, kindle_last_sync, audible_progress, audible_chapter, audible_position_ms, audible_total_ms, audible_last_sync, cover_url, last_updated, created_at"

func upsertArgs(record *BookRecord) []any {
	return []any{
		record.ID,
		record.Title,
		record.Author,
		nullableFloat(record.KindleProgress),
		record.KindleLastPage,
		record.KindleTotalPages,
		record.KindleChapter,
		nullableTime(record.KindleLastSync),
		nullableFloat(record.AudibleProgress),
		record.AudibleChapter,
		record.AudiblePositionMS,
		record.AudibleTotalMS,
		nullableTime(record.AudibleLastSync),
		record.CoverURL,
		record.LastUpdated.UTC().Format(time.RFC3339Nano),
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func scanBook(scanner interface{ Scan(dest ...any) error }) (*BookRecord, error) {
	var (
		id                string
		title             string
		author            string
		kindleProgress    sql.NullFloat64
		kindleLastPage    int
		kindleTotalPages  int
		kindleChapter     string
		kindleLastSyncRaw sql.NullString
		audibleProgress   sql.NullFloat64
		audibleChapter    string
		audiblePositionMS int64
		audibleTotalMS    int64
		audibleSyncRaw    sql.NullString
		coverURL          string
		lastUpdatedRaw    string
		createdRaw        string
	)

	if err := scanner.Scan(
		&id,
		&title,
		&author,
		&kindleProgress,
		&kindleLastPage,
		&kindleTotalPages,
		&kindleChapter,
		&kindleLastSyncRaw,
		&audibleProgress,
		&audibleChapter,
		&audiblePositionMS,
		&audibleTotalMS,
		&audibleSyncRaw,
		&coverURL,
		&lastUpdatedRaw,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	record := &BookRecord{
		ID:                id,
		Title:             title,
		Author:            author,
		KindleLastPage:    kindleLastPage,
		KindleTotalPages:  kindleTotalPages,
		KindleChapter:     kindleChapter,
		AudibleChapter:    audibleChapter,
		AudiblePositionMS: audiblePositionMS,
		AudibleTotalMS:    audibleTotalMS,
		CoverURL:          coverURL,
		LastUpdated:       parseTimestamp(lastUpdatedRaw),
		CreatedAt:         parseTimestamp(createdRaw),
	}
	if kindleProgress.Valid {
		record.KindleProgress = Float(kindleProgress.Float64)
	}
	if audibleProgress.Valid {
		record.AudibleProgress = Float(audibleProgress.Float64)
	}
	if kindleLastSyncRaw.Valid {
		if ts := parseTimestamp(kindleLastSyncRaw.String); !ts.IsZero() {
			record.KindleLastSync = Time(ts)
		}
	}
	if audibleSyncRaw.Valid {
		if ts := parseTimestamp(audibleSyncRaw.String); !ts.IsZero() {
			record.AudibleLastSync = Time(ts)
		}
	}
	return record, nil
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}
