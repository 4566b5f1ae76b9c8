package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/resumescore/internal/compare"
	"github.com/dgallion1/resumescore/internal/config"
	"github.com/dgallion1/resumescore/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for resume comparison.
type Server struct {
	router   chi.Router
	comparer *compare.Comparer
	stats    *stats.Window
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(comparer *compare.Comparer, window *stats.Window, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		comparer: comparer,
		stats:    window,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.CompareAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.CompareAPIKey, s.log))
		}

		r.With(RateLimit(s.cfg.RateLimitPerSec, s.cfg.RateLimitBurst)).Post("/api/compare", s.handleCompare)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
