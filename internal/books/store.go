package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"shelfsync/internal/config"
)

// Store manages book persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the book database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Upsert inserts or fully replaces a record by id. Partial updates are never
// issued; callers mutate a record and write it back whole.
func (s *Store) Upsert(ctx context.Context, record *BookRecord) error {
	if record == nil {
		return errors.New("record is required")
	}
	if strings.TrimSpace(record.ID) == "" {
		return errors.New("record id is required")
	}
	now := time.Now().UTC()
	if record.LastUpdated.IsZero() {
		record.LastUpdated = now
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO books (
            id, title, author,
            kindle_progress, kindle_last_page, kindle_total_pages, kindle_chapter, kindle_last_sync,
            audible_progress, audible_chapter, audible_position_ms, audible_total_ms, audible_last_sync,
            cover_url, last_updated, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		upsertArgs(record)...,
	)
	if err != nil {
		return fmt.Errorf("upsert book: %w", err)
	}
	return nil
}

// GetByID fetches a record by id. Returns nil when no row exists.
func (s *Store) GetByID(ctx context.Context, id string) (*BookRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookColumns+" FROM books WHERE id = ?", id)
	record, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", id, err)
	}
	return record, nil
}

// List returns all records ordered by insertion (created_at, then id). This
// is the iteration order the matcher depends on: the first qualifying
// candidate in this order wins.
func (s *Store) List(ctx context.Context) ([]*BookRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+bookColumns+" FROM books ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var records []*BookRecord
	for rows.Next() {
		record, scanErr := scanBook(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan book: %w", scanErr)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return records, nil
}

// Stats summarizes the library by platform coverage.
type Stats struct {
	Total       int
	KindleOnly  int
	AudibleOnly int
	Matched     int
}

// Stats returns library counts by platform coverage.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	stats.Total = len(records)
	for _, record := range records {
		switch {
		case record.MatchedBoth():
			stats.Matched++
		case record.HasKindle():
			stats.KindleOnly++
		case record.HasAudible():
			stats.AudibleOnly++
		}
	}
	return stats, nil
}

// Remove deletes a record by id, reporting whether a row was removed.
// Deletion is a user-facing action; the reconciliation engine never calls it.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("remove book %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// ReplaceWithMerged atomically removes the source records of a merge and
// inserts the merged record. The merged id is derived from the merged
// title/author and may differ from both source ids, so merge commits as
// delete-old/insert-new rather than an in-place update.
func (s *Store) ReplaceWithMerged(ctx context.Context, merged *BookRecord, oldIDs ...string) error {
	if merged == nil {
		return errors.New("merged record is required")
	}
	if strings.TrimSpace(merged.ID) == "" {
		return errors.New("merged record id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin merge tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range oldIDs {
		if id == "" || id == merged.ID {
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete source record %s: %w", id, err)
		}
	}

	now := time.Now().UTC()
	if merged.LastUpdated.IsZero() {
		merged.LastUpdated = now
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = now
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO books (
            id, title, author,
            kindle_progress, kindle_last_page, kindle_total_pages, kindle_chapter, kindle_last_sync,
            audible_progress, audible_chapter, audible_position_ms, audible_total_ms, audible_last_sync,
            cover_url, last_updated, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		upsertArgs(merged)...,
	); err != nil {
		return fmt.Errorf("insert merged record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge: %w", err)
	}
	return nil
}
