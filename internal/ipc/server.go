package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"strings"
	"sync"

	"log/slog"

	"shelfsync/internal/api"
	"shelfsync/internal/books"
	"shelfsync/internal/config"
	"shelfsync/internal/daemon"
	"shelfsync/internal/logging"
	"shelfsync/internal/reconcile"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, cfg *config.Config, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	path := cfg.SocketPath()
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, cfg: cfg, logger: logging.NewComponentLogger(logger, "ipc"), ctx: ctx}
	if err := rpcServer.RegisterName("Shelfsync", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	cfg    *config.Config
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status, err := s.daemon.Status(s.ctx)
	if err != nil {
		return err
	}
	resp.Running = status.Running
	resp.PID = status.PID
	if !status.StartedAt.IsZero() {
		resp.StartedAt = status.StartedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	resp.DatabasePath = status.DatabasePath
	resp.LockPath = status.LockPath
	resp.Library = api.FromStats(status.Library)
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	return nil
}

func (s *service) List(req ListRequest, resp *ListResponse) error {
	records, err := s.daemon.ListBooks(s.ctx)
	if err != nil {
		return err
	}
	filtered, err := filterRecords(records, req.Filter)
	if err != nil {
		return err
	}
	resp.Books = api.FromBookRecords(filtered, s.cfg.Sync.Threshold)
	return nil
}

func (s *service) Describe(req DescribeRequest, resp *DescribeResponse) error {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return errors.New("describe requires a book id")
	}
	record, err := s.daemon.GetBook(s.ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("book %s not found", id)
	}
	resp.Book = api.FromBookRecord(record, s.cfg.Sync.Threshold)
	return nil
}

func (s *service) Observe(req ObserveRequest, resp *ObserveResponse) error {
	platform, err := books.ParsePlatform(req.Platform)
	if err != nil {
		return err
	}
	record, outcome, err := s.daemon.Observe(s.ctx, reconcile.Observation{
		Platform:   platform,
		Title:      req.Title,
		Author:     req.Author,
		Progress:   req.Progress,
		Chapter:    req.Chapter,
		CoverURL:   req.CoverURL,
		LastPage:   req.LastPage,
		TotalPages: req.TotalPages,
		PositionMS: req.PositionMS,
		TotalMS:    req.TotalMS,
	})
	if err != nil {
		return err
	}
	resp.Outcome = string(outcome)
	resp.Book = api.FromBookRecord(record, s.cfg.Sync.Threshold)
	return nil
}

func (s *service) Remove(req RemoveRequest, resp *RemoveResponse) error {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return errors.New("remove requires a book id")
	}
	removed, err := s.daemon.RemoveBook(s.ctx, id)
	if err != nil {
		return err
	}
	resp.Removed = removed
	return nil
}

func (s *service) TestNotification(_ TestNotificationRequest, resp *TestNotificationResponse) error {
	sent, message, err := s.daemon.TestNotification(s.ctx)
	resp.Sent = sent
	resp.Message = message
	return err
}

func filterRecords(records []*books.BookRecord, filter string) ([]*books.BookRecord, error) {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "":
		return records, nil
	case "matched":
		return keep(records, func(r *books.BookRecord) bool { return r.MatchedBoth() }), nil
	case string(books.PlatformKindle):
		return keep(records, func(r *books.BookRecord) bool { return r.HasKindle() && !r.HasAudible() }), nil
	case string(books.PlatformAudible):
		return keep(records, func(r *books.BookRecord) bool { return r.HasAudible() && !r.HasKindle() }), nil
	default:
		return nil, fmt.Errorf("unknown filter %q", filter)
	}
}

func keep(records []*books.BookRecord, pred func(*books.BookRecord) bool) []*books.BookRecord {
	out := make([]*books.BookRecord, 0, len(records))
	for _, record := range records {
		if pred(record) {
			out = append(out, record)
		}
	}
	return out
}
