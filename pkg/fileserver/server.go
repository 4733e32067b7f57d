package fileserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"
)

// Server owns the listening socket of a file server.
// States: Stopped -> Listening (Listen) -> Stopped (Serve returns).
type Server struct {
	conf    Config
	log     logrus.FieldLogger
	handler http.Handler

	mu  sync.Mutex
	lis net.Listener
}

// NewServer creates a server for handler. conf is copied.
func NewServer(conf Config, log logrus.FieldLogger, handler http.Handler) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		conf:    conf.clone(),
		log:     log,
		handler: handler,
	}
}

// Config returns a copy of the server config.
func (s *Server) Config() Config {
	return s.conf.clone()
}

// Listen binds the TCP socket on all interfaces.
func (s *Server) Listen() (net.Listener, error) {
	lis, err := net.Listen("tcp", s.conf.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.conf.Addr(), err)
	}
	if s.conf.MaxConns > 0 {
		lis = netutil.LimitListener(lis, s.conf.MaxConns)
	}

	s.mu.Lock()
	s.lis = lis
	s.mu.Unlock()

	return lis, nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

// Serve accepts connections on lis until ctx is done. The listener is
// closed and in-flight requests are given ShutdownTimeout to finish before
// Serve returns.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.conf.ReadHeaderTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.conf.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Warn("Graceful shutdown timed out, closing connections.")
			if err := srv.Close(); err != nil {
				s.log.WithError(err).Error("Failed to close server.")
			}
		}
	}()

	s.log.WithField("addr", lis.Addr().String()).Info("Serving...")

	err := srv.Serve(lis)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		s.log.Info("Server stopped.")
		return nil
	}

	// Serve failed on its own; cancel lets the shutdown goroutine finish.
	cancel()
	<-done
	return err
}

// ListenAndServe binds the socket and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}
