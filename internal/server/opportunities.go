package server

import (
	"fmt"
	"net/http"

	"sports-arb-api/internal/arb"
	"sports-arb-api/internal/entitlements"
)

type opportunityRow struct {
	entitlements.Row
	StakePlan *arb.StakePlan `json:"stake_plan,omitempty"`
}

type opportunitiesResponse struct {
	Rows  []opportunityRow `json:"rows"`
	Total int              `json:"total"`
	Plan  string           `json:"plan"`
}

// handleGetOpportunities returns the current opportunity list: filtered by
// the caller's preferences, ranked by ROI, gated by plan, and carrying a
// default stake plan per visible row.
// GET /api/v1/opportunities
func (s *Server) handleGetOpportunities(w http.ResponseWriter, r *http.Request) {
	if s.source == nil {
		respondError(w, http.StatusServiceUnavailable, "opportunity feed not configured")
		return
	}

	prefs, err := s.store.GetPreferences(userID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading preferences: %v", err))
		return
	}

	opps, err := s.source.GetOpportunities(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, fmt.Sprintf("fetching opportunities: %v", err))
		return
	}

	opps = arb.FilterValid(opps)

	filtered := make([]arb.Opportunity, 0, len(opps))
	for _, opp := range opps {
		if opp.ROIBps < prefs.MinROIBps {
			continue
		}
		if !prefs.BookEnabled(opp.Over.Book) || !prefs.BookEnabled(opp.Under.Book) {
			continue
		}
		filtered = append(filtered, opp)
	}
	arb.SortByROI(filtered)

	plan := entitlements.ParsePlan(r.Header.Get("X-Plan"))
	gated := entitlements.Gate(plan, filtered, s.freeLimit)

	rows := make([]opportunityRow, len(gated))
	for i, row := range gated {
		rows[i] = opportunityRow{Row: row}
		if row.Opportunity != nil {
			stakePlan := arb.BuildPlan(*row.Opportunity, prefs.DefaultStake)
			rows[i].StakePlan = &stakePlan
		}
	}

	respondJSON(w, http.StatusOK, opportunitiesResponse{
		Rows:  rows,
		Total: len(rows),
		Plan:  string(plan),
	})
}
