package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server owns the listening socket and drives the fiber application through
// its lifecycle: Starting, Listening, Serving or Failed, then Stopped.
type Server struct {
	cfg   Config
	app   *fiber.App
	log   *zap.Logger
	ln    net.Listener
	state atomic.Int32
}

// New creates a server in the Starting state.
func New(cfg Config, app *fiber.App, log *zap.Logger) *Server {
	return &Server{cfg: cfg, app: app, log: log}
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
	s.log.Debug("Server state changed", zap.Stringer("state", st))
}

// Listen binds the listening socket. A port held by another process yields a
// StartupError of kind ErrPortInUse.
func (s *Server) Listen() error {
	if s.State() != StateStarting {
		return fmt.Errorf("listen: server is %s", s.State())
	}

	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.setState(StateFailed)
		return classifyListenError(addr, err)
	}

	s.ln = ln
	s.setState(StateListening)
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// URL returns the address a local browser should open.
func (s *Server) URL() string {
	port := s.cfg.Port
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return "http://localhost:" + strconv.Itoa(port) + "/"
}

// Serve runs the accept loop until ctx is cancelled, then shuts the
// application down gracefully. The listener is released on every return path.
func (s *Server) Serve(ctx context.Context) error {
	if s.State() != StateListening {
		return fmt.Errorf("serve: server is %s", s.State())
	}

	s.setState(StateServing)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(s.ln)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down server...")
		err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout())
		// Shutdown only closes listeners the accept loop has registered.
		_ = s.ln.Close()
		<-errCh
		if err != nil {
			// An interrupt is a normal exit even if connections were still busy.
			s.log.Warn("Graceful shutdown did not finish in time",
				zap.Duration("timeout", s.cfg.ShutdownTimeout()),
				zap.Error(err),
			)
		}
		s.setState(StateStopped)
		s.log.Info("Server stopped")
		return nil

	case err := <-errCh:
		_ = s.ln.Close()
		if err != nil {
			s.setState(StateFailed)
			return fmt.Errorf("serve: %w", err)
		}
		s.setState(StateStopped)
		return nil
	}
}

// Close releases the listener if Serve was never entered.
func (s *Server) Close() error {
	if s.State() != StateListening {
		return nil
	}
	s.setState(StateStopped)
	if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
