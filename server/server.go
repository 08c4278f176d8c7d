// Package server exposes the renderers over HTTP so other curation tools
// can request documents without shelling out to the CLI.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Server renders curation documents on request.
type Server struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// Publisher overrides the DataCite publisher when set
	Publisher string

	// Now supplies the default generated date and year; time.Now when nil
	Now func() time.Time

	server *http.Server
}

// Run listens on Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("Listening", "addr", s.Addr)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
