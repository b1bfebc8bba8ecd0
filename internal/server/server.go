package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sports-arb-api/internal/feed"
	"sports-arb-api/internal/parlay"
	"sports-arb-api/internal/store"
)

// Server wires the HTTP API over the odds math, the feed and the store.
type Server struct {
	store     *store.DB
	source    feed.Source
	sgpQuoter parlay.CorrelatedQuoter
	freeLimit int
}

// New creates a server. sgpQuoter may be nil when no feed is configured, in
// which case same-game parlay pricing is reported unavailable.
func New(db *store.DB, source feed.Source, sgpQuoter parlay.CorrelatedQuoter, freeLimit int) *Server {
	return &Server{
		store:     db,
		source:    source,
		sgpQuoter: sgpQuoter,
		freeLimit: freeLimit,
	}
}

// Router builds the chi router with middleware and all API routes.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-Plan"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/opportunities", s.handleGetOpportunities)

		r.Post("/calculator/split", s.handleCalculatorSplit)
		r.Post("/calculator/solve", s.handleCalculatorSolve)
		r.Post("/parlay/price", s.handleParlayPrice)

		r.Get("/favorites", s.handleGetFavorites)
		r.Post("/favorites", s.handleAddFavorite)
		r.Delete("/favorites/{id}", s.handleDeleteFavorite)

		r.Get("/betslips", s.handleGetBetslips)
		r.Post("/betslips", s.handleCreateBetslip)
		r.Get("/betslips/{id}", s.handleGetBetslip)
		r.Delete("/betslips/{id}", s.handleDeleteBetslip)
		r.Post("/betslips/{id}/legs", s.handleAddBetslipLeg)
		r.Delete("/betslips/{id}/legs/{legID}", s.handleRemoveBetslipLeg)

		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handleUpdatePreferences)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "sports-arb-api",
	})
}

// userID identifies the caller. Authentication is an external collaborator;
// the auth proxy in front of this service sets the header.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return "default"
}
