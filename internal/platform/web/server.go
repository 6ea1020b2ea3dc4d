// Package web serves the guessing game as a JSON API for browser front ends.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/rgb-guess/internal/config"
	"github.com/vovakirdan/rgb-guess/internal/storage"
)

// Source recorded with rounds won over HTTP.
const Source = "http"

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Colors is the game config used for every new session.
	Colors config.ColorsConfig

	// Store receives won rounds. Optional.
	Store *storage.Store

	// IdleTimeout is how long a session may go without requests.
	IdleTimeout time.Duration

	// JanitorInterval is how often idle sessions are swept.
	JanitorInterval time.Duration

	// Logger receives request and session events. Defaults to a stderr logger.
	Logger *log.Logger

	// Now and Seed are the clock and seed source for sessions. Tests replace them.
	Now  func() time.Time
	Seed func() int64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         ":8080",
		Colors:          config.DefaultColorsConfig(),
		IdleTimeout:     30 * time.Minute,
		JanitorInterval: time.Minute,
	}
}

// Server is the HTTP game server.
type Server struct {
	cfg      Config
	r        *chi.Mux
	sessions *sessionStore
	store    *storage.Store
	logger   *log.Logger
}

// NewServer builds the router and session store.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "rgbguess-http",
		})
	}
	if cfg.JanitorInterval <= 0 {
		cfg.JanitorInterval = time.Minute
	}

	s := &Server{
		cfg:      cfg,
		r:        chi.NewRouter(),
		sessions: newSessionStore(cfg.Colors, cfg.IdleTimeout, cfg.Now, cfg.Seed),
		store:    cfg.Store,
		logger:   logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/api/games", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Post("/difficulty", s.handleDifficulty)
			r.Post("/new", s.handleNewColors)
			r.Post("/tiles/{index}", s.handleTile)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errNotFound)
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// Serve listens on the configured address and sweeps idle sessions until
// ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting HTTP server", "address", s.cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.sessions.RunJanitor(ctx, s.cfg.JanitorInterval, func(n int) {
			s.logger.Info("expired idle sessions", "count", n, "live", s.sessions.Len())
		})
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(started),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
