package daemonrun

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/google/uuid"

	"shelfsync/internal/books"
	"shelfsync/internal/config"
	"shelfsync/internal/daemon"
	"shelfsync/internal/ipc"
	"shelfsync/internal/logging"
	"shelfsync/internal/match"
	"shelfsync/internal/notifications"
	"shelfsync/internal/reconcile"
)

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel string
}

// Run starts the shelfsync daemon runtime loop and blocks until the process
// receives SIGINT or SIGTERM.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := logging.New(logging.Options{
		Level:       level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", filepath.Join(cfg.Paths.LogDir, "shelfsync.log")},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	sessionID := uuid.NewString()
	logger = logger.With(logging.String("session_id", sessionID))

	pidPath := filepath.Join(cfg.Paths.DataDir, "shelfsyncd.pid")
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer os.Remove(pidPath)

	store, err := books.Open(cfg)
	if err != nil {
		logger.Error("open book store", logging.Error(err))
		return err
	}
	defer store.Close()

	notifier := notifications.NewService(cfg)
	matcher := match.NewMatcher(store, cfg, logger)
	reconciler := reconcile.NewReconciler(store, matcher, logger, reconcile.WithNotifier(notifier))

	d, err := daemon.New(cfg, store, reconciler, logger)
	if err != nil {
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Close()

	ipcServer, err := ipc.NewServer(signalCtx, cfg, d, logger)
	if err != nil {
		return fmt.Errorf("start IPC server: %w", err)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	if err := d.Start(signalCtx); err != nil {
		logger.Error("daemon start failed", logging.Error(err))
		return err
	}

	logger.Info("shelfsync daemon ready",
		logging.String("socket", cfg.SocketPath()),
		logging.String("database", cfg.DatabasePath()),
	)

	<-signalCtx.Done()
	logger.Info("shelfsync daemon shutting down")
	return nil
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}
