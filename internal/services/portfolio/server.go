// Package portfolio hosts the browser-facing portfolio site.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paul-wang1/portfolio/internal/platform/timeouts"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/routepath"
	"github.com/paul-wang1/portfolio/internal/services/portfolio/static"
	"go.uber.org/zap"
)

// Config defines startup inputs for the portfolio service.
type Config struct {
	HTTPAddr string
	// AssetsDir holds the public files/ and images/ trees. Empty disables them.
	AssetsDir string
	Store     content.Store
	Logger    *zap.Logger
	// Now drives the footer year; defaults to time.Now.
	Now func() time.Time
}

// Server hosts the portfolio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler serving every page and asset route.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("content store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	h := &handlers{store: cfg.Store, logger: logger, now: now}

	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Root+"{$}", h.home)
	mux.HandleFunc(routepath.Projects, h.projects)
	mux.HandleFunc(routepath.ProjectPattern, h.project)
	mux.HandleFunc(routepath.About, h.about)
	mux.HandleFunc(routepath.Health, h.health)
	mux.HandleFunc(routepath.Root, h.notFound)
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))

	keep := []string{routepath.StaticPrefix}
	if dir := strings.TrimSpace(cfg.AssetsDir); dir != "" {
		assets := http.FileServer(http.Dir(dir))
		mux.Handle(routepath.FilesPrefix, assets)
		mux.Handle(routepath.ImagesPrefix, assets)
		mux.Handle(routepath.Headshot, assets)
		keep = append(keep, routepath.FilesPrefix, routepath.ImagesPrefix)
	}

	return httpx.Chain(mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.Trace(),
		httpx.LogRequests(logger),
		httpx.RequireMethod(http.MethodGet, http.MethodHead),
		httpx.CanonicalPath(keep...),
	), nil
}

// NewServer validates config and constructs a portfolio server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose portfolio handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portfolio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown portfolio http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve portfolio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
