package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sports-arb-api/internal/oddsmath"
	"sports-arb-api/internal/parlay"
)

type splitRequest struct {
	OverOdds   int     `json:"over_odds"`
	UnderOdds  int     `json:"under_odds"`
	TotalStake float64 `json:"total_stake"`
}

type stakePlanResponse struct {
	OverStake        float64 `json:"over_stake"`
	UnderStake       float64 `json:"under_stake"`
	TotalStake       float64 `json:"total_stake"`
	GuaranteedProfit float64 `json:"guaranteed_profit"`
}

// handleCalculatorSplit computes the equal-profit split of a total stake.
// POST /api/v1/calculator/split
func (s *Server) handleCalculatorSplit(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	// Zero odds mean "no price"; they never reach the math.
	if req.OverOdds == 0 || req.UnderOdds == 0 {
		respondError(w, http.StatusBadRequest, "odds cannot be zero")
		return
	}
	if req.TotalStake <= 0 {
		respondError(w, http.StatusBadRequest, "total_stake must be positive")
		return
	}

	overStake, underStake := oddsmath.SplitEqualProfit(req.OverOdds, req.UnderOdds, req.TotalStake)
	respondJSON(w, http.StatusOK, stakePlanResponse{
		OverStake:        overStake,
		UnderStake:       underStake,
		TotalStake:       req.TotalStake,
		GuaranteedProfit: oddsmath.Profit(req.OverOdds, req.UnderOdds, overStake, underStake),
	})
}

type solveRequest struct {
	EditedStake  float64 `json:"edited_stake"`
	EditedOdds   int     `json:"edited_odds"`
	OppositeOdds int     `json:"opposite_odds"`
	Rounding     string  `json:"rounding"` // "dollar" (default) or "cent"
}

type solveResponse struct {
	EditedStake      float64 `json:"edited_stake"`
	OppositeStake    float64 `json:"opposite_stake"`
	TotalStake       float64 `json:"total_stake"`
	GuaranteedProfit float64 `json:"guaranteed_profit"`
}

// handleCalculatorSolve recomputes the opposite stake after the user edits
// one side. The edited side is rounded first, then the opposite is solved
// from the rounded value so the equal-payout property survives rounding.
// POST /api/v1/calculator/solve
func (s *Server) handleCalculatorSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if req.EditedOdds == 0 || req.OppositeOdds == 0 {
		respondError(w, http.StatusBadRequest, "odds cannot be zero")
		return
	}
	if req.EditedStake <= 0 {
		respondError(w, http.StatusBadRequest, "edited_stake must be positive")
		return
	}

	mode := oddsmath.RoundDollar
	switch req.Rounding {
	case "", string(oddsmath.RoundDollar):
	case string(oddsmath.RoundCent):
		mode = oddsmath.RoundCent
	default:
		respondError(w, http.StatusBadRequest, "rounding must be \"dollar\" or \"cent\"")
		return
	}

	edited, opposite := oddsmath.RoundStakePair(req.EditedStake, req.EditedOdds, req.OppositeOdds, mode)
	respondJSON(w, http.StatusOK, solveResponse{
		EditedStake:      edited,
		OppositeStake:    opposite,
		TotalStake:       edited + opposite,
		GuaranteedProfit: oddsmath.Profit(req.EditedOdds, req.OppositeOdds, edited, opposite),
	})
}

type parlayPriceRequest struct {
	Legs []parlay.Leg `json:"legs"`
}

type parlayPriceResponse struct {
	Correlated bool               `json:"correlated"`
	Quotes     []parlay.BookQuote `json:"quotes"`
}

// handleParlayPrice prices a leg set across sportsbooks. Independent legs are
// compounded locally; same-game leg sets go to the external correlated quoter.
// POST /api/v1/parlay/price
func (s *Server) handleParlayPrice(w http.ResponseWriter, r *http.Request) {
	var req parlayPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if len(req.Legs) == 0 {
		respondError(w, http.StatusBadRequest, "parlay requires at least one leg")
		return
	}

	if parlay.HasCorrelatedLegs(req.Legs) {
		if s.sgpQuoter == nil {
			respondError(w, http.StatusServiceUnavailable, "same-game parlay pricing unavailable")
			return
		}
		quotes, err := s.sgpQuoter.QuoteCorrelated(r.Context(), req.Legs)
		if err != nil {
			respondError(w, http.StatusBadGateway, fmt.Sprintf("correlated quote failed: %v", err))
			return
		}
		respondJSON(w, http.StatusOK, parlayPriceResponse{Correlated: true, Quotes: quotes})
		return
	}

	quotes, err := parlay.PriceAcrossBooks(req.Legs)
	if err != nil {
		if errors.Is(err, oddsmath.ErrEmptyParlay) || errors.Is(err, oddsmath.ErrZeroOdds) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("pricing parlay: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, parlayPriceResponse{Quotes: quotes})
}
