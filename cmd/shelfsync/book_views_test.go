package main

import (
	"strings"
	"testing"
	"time"

	"shelfsync/internal/api"
	"shelfsync/internal/ipc"
)

func TestBookTableRow(t *testing.T) {
	book := ipc.Book{
		ID:      "bk_0123456789abcdef",
		Title:   "Project Hail Mary",
		Author:  "Andy Weir",
		Kindle:  &api.KindleSide{Progress: 0.6},
		Audible: &api.AudibleSide{Progress: 0.5},
		Sync:    &api.SyncStatusView{Ahead: "kindle", Percent: 10},
	}

	row := bookTableRow(book)
	want := []string{"bk_0123456789abcdef", "Project Hail Mary", "Andy Weir", "60%", "50%", "kindle +10%", "-"}
	if len(row) != len(want) {
		t.Fatalf("row has %d cells, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestSyncCell(t *testing.T) {
	if got := syncCell(ipc.Book{}); got != "-" {
		t.Errorf("empty sync cell = %q, want dash", got)
	}
	synced := ipc.Book{Sync: &api.SyncStatusView{Synced: true}}
	if got := syncCell(synced); got != "in sync" {
		t.Errorf("synced cell = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(0.6); got != "60%" {
		t.Errorf("formatPercent(0.6) = %q", got)
	}
	if got := formatPercent(0); got != "0%" {
		t.Errorf("formatPercent(0) = %q", got)
	}
}

func TestRelativeTimeCell(t *testing.T) {
	if got := relativeTimeCell(""); got != "-" {
		t.Errorf("empty timestamp = %q, want dash", got)
	}
	if got := relativeTimeCell("not-a-time"); got != "not-a-time" {
		t.Errorf("unparseable timestamp = %q, want verbatim", got)
	}
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	if got := relativeTimeCell(recent); !strings.Contains(got, "ago") {
		t.Errorf("recent timestamp = %q, want relative form", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 50)
	got := truncate(long, 40)
	if len([]rune(got)) != 40 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate(long) = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Title"},
		[][]string{{"bk_1", "Dune"}},
		[]columnAlignment{alignLeft, alignLeft},
	)
	if !strings.Contains(out, "Dune") || !strings.Contains(out, "bk_1") {
		t.Errorf("table missing cells:\n%s", out)
	}
}
