package ipc

import "shelfsync/internal/api"

// Book mirrors the API book DTO for IPC callers.
type Book = api.BookView

// LibraryStats mirrors the API stats DTO for IPC callers.
type LibraryStats = api.LibraryStats

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime and library information.
type StatusResponse struct {
	Running      bool         `json:"running"`
	PID          int          `json:"pid"`
	StartedAt    string       `json:"started_at,omitempty"`
	DatabasePath string       `json:"database_path"`
	LockPath     string       `json:"lock_path"`
	Library      LibraryStats `json:"library"`
}

// StopRequest stops the daemon.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// ListRequest fetches tracked books, optionally filtered by platform coverage.
// Filter is one of "", "kindle", "audible", or "matched".
type ListRequest struct {
	Filter string `json:"filter"`
}

// ListResponse contains the tracked books.
type ListResponse struct {
	Books []Book `json:"books"`
}

// DescribeRequest fetches a single book by id.
type DescribeRequest struct {
	ID string `json:"id"`
}

// DescribeResponse contains a single book.
type DescribeResponse struct {
	Book Book `json:"book"`
}

// ObserveRequest submits a platform progress observation.
type ObserveRequest struct {
	Platform   string   `json:"platform"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Progress   *float64 `json:"progress"`
	Chapter    string   `json:"chapter"`
	CoverURL   string   `json:"cover_url"`
	LastPage   int      `json:"last_page"`
	TotalPages int      `json:"total_pages"`
	PositionMS int64    `json:"position_ms"`
	TotalMS    int64    `json:"total_ms"`
}

// ObserveResponse reports the reconciliation outcome for an observation.
type ObserveResponse struct {
	Outcome string `json:"outcome"`
	Book    Book   `json:"book"`
}

// RemoveRequest deletes a book by id.
type RemoveRequest struct {
	ID string `json:"id"`
}

// RemoveResponse reports whether a record was removed.
type RemoveResponse struct {
	Removed bool `json:"removed"`
}

// TestNotificationRequest triggers a notification test.
type TestNotificationRequest struct{}

// TestNotificationResponse reports notification test outcome.
type TestNotificationResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}
