// Package server assembles the HTTP routes and middleware chain and runs the
// listener until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ideahub/backend/internal/handler"
	"github.com/ideahub/backend/internal/metrics"
	"github.com/ideahub/backend/internal/service"
	"github.com/ideahub/backend/internal/validation"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	DB          handler.Pinger
	Contacts    service.ContactService
	Projects    service.ProjectService
	Options     validation.OptionSets
	FrontendURL string
	// Limiter throttles the submission endpoints. Nil disables throttling.
	Limiter *handler.RateLimiter
	Static  fs.FS
}

// NewHandler returns the fully wrapped application handler.
func NewHandler(d Deps) http.Handler {
	h := handler.New(d.DB, d.FrontendURL)
	contactHandler := handler.NewContactHandler(d.Contacts)
	projectHandler := handler.NewProjectHandler(d.Projects)
	formHandler := handler.NewFormHandler(d.Options)

	limit := func(next http.HandlerFunc) http.Handler {
		if d.Limiter == nil {
			return next
		}
		return d.Limiter.Middleware(next)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/contact", limit(contactHandler.Submit))
	mux.Handle("POST /api/project", limit(projectHandler.Submit))
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/forms/{form}", formHandler.Schema)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/", handler.NotFound)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /", http.FileServerFS(d.Static))

	// Outermost first: request id, metrics, panic recovery, headers, CORS.
	var root http.Handler = h.CORS(mux)
	root = handler.SecurityHeaders(root)
	root = handler.Recover(root)
	root = metrics.InstrumentHandler(root)
	root = handler.RequestLogger(root)
	return root
}

// New returns an http.Server for addr with conservative timeouts.
func New(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Run serves on ln until ctx is done, then shuts down, waiting up to
// shutdownTimeout for in-flight requests.
func Run(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", shutdownTimeout.String())
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
