package api

import (
	"testing"
	"time"

	"shelfsync/internal/books"
)

func TestFromBookRecordSingleSide(t *testing.T) {
	now := time.Now().UTC()
	record := &books.BookRecord{
		ID:             "bk_0123456789abcdef",
		Title:          "The Martian",
		Author:         "Andy Weir",
		KindleProgress: books.Float(0.42),
		KindleLastSync: books.Time(now),
		LastUpdated:    now,
	}

	view := FromBookRecord(record, 0.05)
	if view.Kindle == nil {
		t.Fatal("kindle side missing")
	}
	if view.Audible != nil {
		t.Error("audible side should be absent")
	}
	if view.Sync != nil {
		t.Error("sync view requires both platforms")
	}
	if view.Resume != nil {
		t.Error("resume views require cross-platform data")
	}
	if view.Kindle.Progress != 0.42 {
		t.Errorf("kindle progress %v", view.Kindle.Progress)
	}
	if view.LastUpdated == "" {
		t.Error("last updated should be formatted")
	}
}

func TestFromBookRecordMatchedBoth(t *testing.T) {
	now := time.Now().UTC()
	record := &books.BookRecord{
		ID:               "bk_0123456789abcdef",
		Title:            "Project Hail Mary",
		Author:           "Andy Weir",
		KindleProgress:   books.Float(0.60),
		KindleTotalPages: 476,
		KindleLastSync:   books.Time(now),
		AudibleProgress:  books.Float(0.50),
		AudibleTotalMS:   7_200_000,
		AudibleLastSync:  books.Time(now),
		LastUpdated:      now,
	}

	view := FromBookRecord(record, 0.05)
	if view.Sync == nil {
		t.Fatal("sync view missing")
	}
	if view.Sync.Synced || view.Sync.Ahead != "kindle" || view.Sync.Percent != 10 {
		t.Errorf("unexpected sync view: %+v", view.Sync)
	}
	if view.Resume == nil || view.Resume.Audible == nil || view.Resume.Kindle == nil {
		t.Fatalf("resume views missing: %+v", view.Resume)
	}
	if view.Resume.Audible.PositionMS != 4_320_000 {
		t.Errorf("audible resume %d ms", view.Resume.Audible.PositionMS)
	}
	if view.Resume.Kindle.Page != 238 {
		t.Errorf("kindle resume page %d", view.Resume.Kindle.Page)
	}
}

func TestFromBookRecordsEmpty(t *testing.T) {
	if got := FromBookRecords(nil, 0.05); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
