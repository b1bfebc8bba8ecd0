package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sports-arb-api/internal/store"
)

// handleGetPreferences returns the caller's preferences, or defaults.
// GET /api/v1/preferences
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.store.GetPreferences(userID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading preferences: %v", err))
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

// handleUpdatePreferences validates and saves the caller's preferences.
// PUT /api/v1/preferences
func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs store.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	prefs.UserID = userID(r)
	if err := prefs.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.UpdatePreferences(prefs); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("saving preferences: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}
