// Package server exposes the fitted iris model over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/irisml/irispredict/irismodel"
)

// Server wraps an http.Server around the prediction router.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a Server listening on all interfaces at the given port.
func NewServer(port int, m *irismodel.Model) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", port),
			Handler: NewRouter(m),
		},
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully, waiting up to five seconds for
// in-flight requests.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
