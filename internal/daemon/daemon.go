package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"shelfsync/internal/books"
	"shelfsync/internal/config"
	"shelfsync/internal/logging"
	"shelfsync/internal/notifications"
	"shelfsync/internal/reconcile"
)

// Daemon owns the reconciliation engine and enforces single-instance execution
// via a file lock.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *books.Store
	reconciler *reconcile.Reconciler

	lockPath string
	lock     *flock.Flock

	running   atomic.Bool
	startedAt time.Time
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	StartedAt    time.Time
	DatabasePath string
	LockPath     string
	Library      books.Stats
}

// New constructs a daemon around an opened store and reconciler.
func New(cfg *config.Config, store *books.Store, reconciler *reconcile.Reconciler, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil || reconciler == nil {
		return nil, errors.New("daemon requires config, store, and reconciler")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		reconciler: reconciler,
		lockPath:   lockPath,
		lock:       flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and marks the daemon running.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another shelfsync daemon instance is already running")
	}

	d.startedAt = time.Now().UTC()
	d.running.Store(true)
	d.logger.Info("daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("daemon stopped")
}

// Close stops the daemon and closes the store.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status returns the current daemon status including library counts.
func (d *Daemon) Status(ctx context.Context) (Status, error) {
	stats, err := d.store.Stats(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("library stats: %w", err)
	}
	return Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		StartedAt:    d.startedAt,
		DatabasePath: d.cfg.DatabasePath(),
		LockPath:     d.lockPath,
		Library:      stats,
	}, nil
}

// Observe feeds a platform observation through the reconciliation engine.
func (d *Daemon) Observe(ctx context.Context, obs reconcile.Observation) (*books.BookRecord, reconcile.Outcome, error) {
	return d.reconciler.Observe(ctx, obs)
}

// ListBooks returns every tracked record in creation order.
func (d *Daemon) ListBooks(ctx context.Context) ([]*books.BookRecord, error) {
	return d.store.List(ctx)
}

// GetBook fetches a single record by id, nil when absent.
func (d *Daemon) GetBook(ctx context.Context, id string) (*books.BookRecord, error) {
	return d.store.GetByID(ctx, id)
}

// RemoveBook deletes a record by id, reporting whether a row existed.
func (d *Daemon) RemoveBook(ctx context.Context, id string) (bool, error) {
	removed, err := d.store.Remove(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		d.logger.Info("book removed", logging.String("id", id))
	}
	return removed, nil
}

// TestNotification triggers a test push using the current configuration.
func (d *Daemon) TestNotification(ctx context.Context) (bool, string, error) {
	if strings.TrimSpace(d.cfg.Notifications.NtfyTopic) == "" {
		return false, "ntfy topic not configured", nil
	}
	notifier := notifications.NewService(d.cfg)
	if err := notifier.TestNotification(ctx); err != nil {
		return false, "failed to send notification", err
	}
	return true, "test notification sent", nil
}
