package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"shelfsync/internal/ipc"
)

func bookTableHeaders() []string {
	return []string{"ID", "Title", "Author", "Kindle", "Audible", "Sync", "Updated"}
}

func bookTableAligns() []columnAlignment {
	return []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
}

func bookTableRow(book ipc.Book) []string {
	return []string{
		book.ID,
		truncate(book.Title, 40),
		truncate(book.Author, 24),
		kindlePercentCell(book),
		audiblePercentCell(book),
		syncCell(book),
		relativeTimeCell(book.LastUpdated),
	}
}

func kindlePercentCell(book ipc.Book) string {
	if book.Kindle == nil {
		return "-"
	}
	return formatPercent(book.Kindle.Progress)
}

func audiblePercentCell(book ipc.Book) string {
	if book.Audible == nil {
		return "-"
	}
	return formatPercent(book.Audible.Progress)
}

func syncCell(book ipc.Book) string {
	if book.Sync == nil {
		return "-"
	}
	if book.Sync.Synced {
		return "in sync"
	}
	return fmt.Sprintf("%s +%d%%", book.Sync.Ahead, book.Sync.Percent)
}

func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

// relativeTimeCell renders an API timestamp as a relative time ("3 hours ago").
// Unparseable or empty values fall through to a dash.
func relativeTimeCell(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "-"
	}
	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return trimmed
	}
	return humanize.Time(parsed)
}

func truncate(value string, limit int) string {
	if limit <= 3 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-3]) + "..."
}
