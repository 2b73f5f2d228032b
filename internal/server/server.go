// Package server exposes the portfolio over HTTP with gin: the full page,
// the htmx fragments that drive navigation, the mobile menu and the reveal
// animations, the resume download and the optional admin area.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devankur/portfolio/internal/analytics"
	"github.com/devankur/portfolio/internal/cache"
	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/view"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	Content *content.Store
	// Pages defaults to cache.Nop.
	Pages cache.Pages
	// Tracker enables visitor metrics and the admin area. May be nil.
	Tracker   *analytics.Tracker
	Retention time.Duration

	ResumeFile string
	StaticDir  string

	AdminUsername string
	AdminPassword string

	Logger *zap.Logger
}

type Server struct {
	engine     *gin.Engine
	content    *content.Store
	pages      cache.Pages
	tracker    *analytics.Tracker
	retention  time.Duration
	resumeFile string
	log        *zap.Logger
}

// New builds the router. The gin mode must be set by the caller.
func New(opts Options) (*Server, error) {
	if opts.Content == nil {
		return nil, errors.New("server: content store is required")
	}
	s := &Server{
		content:    opts.Content,
		pages:      opts.Pages,
		tracker:    opts.Tracker,
		retention:  opts.Retention,
		resumeFile: opts.ResumeFile,
		log:        opts.Logger,
	}
	if s.pages == nil {
		s.pages = cache.Nop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestID(), accessLog(s.log), recovery(s.log))
	if s.tracker != nil {
		r.Use(trackVisits(s.tracker))
	}

	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			r.Static("/static", opts.StaticDir)
		} else {
			s.log.Info("static directory not found, not serving /static", zap.String("dir", opts.StaticDir))
		}
	}

	r.GET("/", s.page)
	r.GET("/healthz", s.healthz)
	r.GET("/resume.pdf", s.resume)
	r.POST(view.RouteContact, s.contact)

	frag := r.Group("/ui")
	frag.POST("/navigate", s.navigate)
	frag.POST("/menu", s.menu)
	frag.POST("/reveal/:section", s.reveal)

	if s.tracker != nil {
		if err := s.mountAdmin(r, opts.AdminUsername, opts.AdminPassword); err != nil {
			return nil, err
		}
	}

	r.NoRoute(s.notFound)

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
