package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// BookView describes a book record in a transport-friendly format.
type BookView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`

	Kindle  *KindleSide  `json:"kindle,omitempty"`
	Audible *AudibleSide `json:"audible,omitempty"`

	CoverURL    string `json:"coverUrl,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`

	Sync   *SyncStatusView `json:"sync,omitempty"`
	Resume *ResumeView     `json:"resume,omitempty"`
}

// KindleSide carries the e-reader half of a record.
type KindleSide struct {
	Progress   float64 `json:"progress"`
	LastPage   int     `json:"lastPage,omitempty"`
	TotalPages int     `json:"totalPages,omitempty"`
	Chapter    string  `json:"chapter,omitempty"`
	LastSync   string  `json:"lastSync,omitempty"`
}

// AudibleSide carries the audiobook half of a record.
type AudibleSide struct {
	Progress   float64 `json:"progress"`
	Chapter    string  `json:"chapter,omitempty"`
	PositionMS int64   `json:"positionMs,omitempty"`
	TotalMS    int64   `json:"totalMs,omitempty"`
	LastSync   string  `json:"lastSync,omitempty"`
}

// SyncStatusView reports drift between the two platforms.
type SyncStatusView struct {
	Synced      bool   `json:"synced"`
	Ahead       string `json:"ahead,omitempty"`
	Percent     int    `json:"percent"`
	Description string `json:"description"`
}

// ResumeView carries cross-platform resume suggestions.
type ResumeView struct {
	Audible *AudibleResume `json:"audible,omitempty"`
	Kindle  *KindleResume  `json:"kindle,omitempty"`
}

// AudibleResume suggests where to continue listening.
type AudibleResume struct {
	PositionMS  int64  `json:"positionMs"`
	Description string `json:"description"`
}

// KindleResume suggests where to continue reading.
type KindleResume struct {
	Page        int    `json:"page,omitempty"`
	Description string `json:"description"`
}

// LibraryStats summarizes platform coverage across the library.
type LibraryStats struct {
	Total       int `json:"total"`
	KindleOnly  int `json:"kindleOnly"`
	AudibleOnly int `json:"audibleOnly"`
	Matched     int `json:"matched"`
}
