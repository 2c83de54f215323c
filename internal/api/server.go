// Package api provides the HTTP API server and handlers for the Matchboard application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matchboardapp/matchboard-server/internal/config"
	"github.com/matchboardapp/matchboard-server/internal/ratelimit"
	"github.com/matchboardapp/matchboard-server/internal/search"
	"github.com/matchboardapp/matchboard-server/internal/store"
	"github.com/matchboardapp/matchboard-server/internal/validation"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	search    *search.Index
	router    *chi.Mux
	api       huma.API
	validator *validation.Validator
	limiter   *ratelimit.PerClient
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, st *store.Store, idx *search.Index, logger *slog.Logger) *Server {
	s := &Server{
		store:     st,
		search:    idx,
		router:    chi.NewRouter(),
		validator: validation.New(),
		limiter:   ratelimit.New(cfg.Server.MutationRPS, cfg.Server.MutationBurst),
		logger:    logger,
	}

	s.setupMiddleware(cfg)

	humaConfig := huma.DefaultConfig(cfg.Server.Name, Version)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-held resources.
func (s *Server) Close() {
	s.limiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(s.limitMutations)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerDataRoutes()
	s.registerCandidateRoutes()
	s.registerNoteRoutes()
	s.registerInteractionRoutes()
	s.registerTagRoutes()
	s.registerSearchRoutes()

	// Export downloads are plain chi handlers: huma models JSON
	// request/response pairs, not attachment streams.
	s.router.Get("/api/v1/export/json", s.handleExportJSON)
	s.router.Get("/api/v1/export/pdf", s.handleExportPDF)
}
