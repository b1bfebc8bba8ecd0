package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sports-arb-api/internal/store"
)

// handleGetFavorites lists the caller's saved opportunities.
// GET /api/v1/favorites
func (s *Server) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.store.GetFavorites(userID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading favorites: %v", err))
		return
	}
	if favorites == nil {
		favorites = []store.Favorite{}
	}
	respondJSON(w, http.StatusOK, favorites)
}

// handleAddFavorite saves an opportunity.
// POST /api/v1/favorites
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav store.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if fav.EventName == "" || fav.Market == "" {
		respondError(w, http.StatusBadRequest, "event_name and market are required")
		return
	}
	if fav.Over.AmericanOdds == 0 || fav.Under.AmericanOdds == 0 {
		respondError(w, http.StatusBadRequest, "both legs need a price")
		return
	}

	fav.UserID = userID(r)
	id, err := s.store.AddFavorite(fav)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("saving favorite: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleDeleteFavorite removes a saved opportunity.
// DELETE /api/v1/favorites/{id}
func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.store.DeleteFavorite(userID(r), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "favorite not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("deleting favorite: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
