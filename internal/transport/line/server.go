package line

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"zoo/internal/platform/metrics"
	"zoo/pkg/requestcontext"
)

// Server accepts client connections and serves one request per line.
type Server struct {
	handler     *Handler
	logger      *slog.Logger
	metrics     *metrics.Metrics
	idleTimeout time.Duration

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
}

type ServerOption func(*Server)

func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithServerMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithIdleTimeout closes connections that send nothing for d. Zero disables it.
func WithIdleTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.idleTimeout = d
	}
}

func NewServer(handler *Handler, opts ...ServerOption) *Server {
	s := &Server{
		handler: handler,
		logger:  slog.Default(),
		conns:   make(map[net.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. On return every
// connection has been closed and its in-flight request has finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.InfoContext(ctx, "line server listening", "addr", ln.Addr().String())

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
		s.closeConns()
	})
	defer stop()

	var err error
	for {
		conn, acceptErr := ln.Accept()
		if acceptErr != nil {
			if ctx.Err() == nil && !errors.Is(acceptErr, net.ErrClosed) {
				err = acceptErr
			}
			break
		}
		if !s.track(conn) {
			_ = conn.Close()
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(ctx, conn)
		}()
	}

	_ = ln.Close()
	s.closeConns()
	s.wg.Wait()
	s.logger.InfoContext(ctx, "line server stopped")
	return err
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = nil
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	addr := conn.RemoteAddr().String()
	s.metrics.ConnectionOpened()
	s.logger.DebugContext(ctx, "connection opened", "client_addr", addr)
	defer func() {
		s.untrack(conn)
		_ = conn.Close()
		s.metrics.ConnectionClosed()
		s.logger.DebugContext(ctx, "connection closed", "client_addr", addr)
	}()

	// A request that has started runs to completion even during shutdown.
	reqCtx := requestcontext.WithClientAddr(context.WithoutCancel(ctx), addr)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	w := bufio.NewWriter(conn)
	enc := json.NewEncoder(w)

	for {
		if s.idleTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.idleTimeout))
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := s.write(w, enc, s.handler.Handle(reqCtx, line)); err != nil {
			s.logger.DebugContext(ctx, "write failed", "client_addr", addr, "error", err)
			return
		}
	}

	if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
		_ = s.write(w, enc, Response{Message: "request too large"})
		lingerClose(conn)
	} else if err != nil && ctx.Err() == nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			s.logger.DebugContext(ctx, "idle connection closed", "client_addr", addr)
		} else if !errors.Is(err, net.ErrClosed) {
			s.logger.DebugContext(ctx, "read failed", "client_addr", addr, "error", err)
		}
	}
}

func (s *Server) write(w *bufio.Writer, enc *json.Encoder, resp Response) error {
	if err := enc.Encode(resp); err != nil {
		return err
	}
	return w.Flush()
}

// lingerClose half-closes conn and discards what the client is still sending
// so the final response is not lost to a reset.
func lingerClose(conn net.Conn) {
	if hc, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = hc.CloseWrite()
	}
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _ = io.Copy(io.Discard, io.LimitReader(conn, MaxLineBytes))
}
