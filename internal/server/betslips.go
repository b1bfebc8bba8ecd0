package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sports-arb-api/internal/parlay"
	"sports-arb-api/internal/store"
)

type betslipResponse struct {
	store.Betslip
	Quotes     []parlay.BookQuote `json:"quotes,omitempty"`
	Correlated bool               `json:"correlated,omitempty"`
}

// handleGetBetslips lists the caller's betslips.
// GET /api/v1/betslips
func (s *Server) handleGetBetslips(w http.ResponseWriter, r *http.Request) {
	slips, err := s.store.GetBetslips(userID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading betslips: %v", err))
		return
	}
	if slips == nil {
		slips = []store.Betslip{}
	}
	respondJSON(w, http.StatusOK, slips)
}

type createBetslipRequest struct {
	Name string `json:"name"`
}

// handleCreateBetslip creates an empty named slip.
// POST /api/v1/betslips
func (s *Server) handleCreateBetslip(w http.ResponseWriter, r *http.Request) {
	var req createBetslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := s.store.CreateBetslip(userID(r), req.Name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("creating betslip: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleGetBetslip returns one slip with its current parlay quotes attached.
// Same-game slips are priced through the correlated quoter; quote failures
// degrade to the bare slip rather than failing the read.
// GET /api/v1/betslips/{id}
func (s *Server) handleGetBetslip(w http.ResponseWriter, r *http.Request) {
	slip, err := s.store.GetBetslip(userID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading betslip: %v", err))
		return
	}
	if slip == nil {
		respondError(w, http.StatusNotFound, "betslip not found")
		return
	}

	resp := betslipResponse{Betslip: *slip}
	legs := slip.ParlayLegs()
	if len(legs) > 0 {
		if parlay.HasCorrelatedLegs(legs) {
			resp.Correlated = true
			if s.sgpQuoter != nil {
				if quotes, err := s.sgpQuoter.QuoteCorrelated(r.Context(), legs); err == nil {
					resp.Quotes = quotes
				}
			}
		} else if quotes, err := parlay.PriceAcrossBooks(legs); err == nil {
			resp.Quotes = quotes
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleDeleteBetslip removes a slip.
// DELETE /api/v1/betslips/{id}
func (s *Server) handleDeleteBetslip(w http.ResponseWriter, r *http.Request) {
	err := s.store.DeleteBetslip(userID(r), chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "betslip not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("deleting betslip: %v", err))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleAddBetslipLeg appends a selection to a slip.
// POST /api/v1/betslips/{id}/legs
func (s *Server) handleAddBetslipLeg(w http.ResponseWriter, r *http.Request) {
	var leg store.BetslipLeg
	if err := json.NewDecoder(r.Body).Decode(&leg); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if leg.EventID == "" || leg.Market == "" || leg.Selection == "" {
		respondError(w, http.StatusBadRequest, "event_id, market and selection are required")
		return
	}

	id, err := s.store.AddBetslipLeg(userID(r), chi.URLParam(r, "id"), leg)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "betslip not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("adding leg: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleRemoveBetslipLeg removes a selection from a slip.
// DELETE /api/v1/betslips/{id}/legs/{legID}
func (s *Server) handleRemoveBetslipLeg(w http.ResponseWriter, r *http.Request) {
	err := s.store.RemoveBetslipLeg(userID(r), chi.URLParam(r, "id"), chi.URLParam(r, "legID"))
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "betslip or leg not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("removing leg: %v", err))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
