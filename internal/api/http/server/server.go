package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mrkiwinator/mesto-server/internal/config"
	"github.com/mrkiwinator/mesto-server/internal/model"
)

// HTTPServer wraps http.Server with address and lifecycle methods.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates an HTTPServer serving handler on addr with the
// configured timeouts.
func NewHTTPServer(handler http.Handler, addr string, cfg config.HTTP) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		addr: addr,
	}
}

// Start starts serving on the configured address using the provided
// security layer. It blocks until the server stops.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server, waiting for in-flight requests
// up to the context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	shutdownCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}
	return s.server.Shutdown(shutdownCtx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
