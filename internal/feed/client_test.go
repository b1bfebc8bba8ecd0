package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sports-arb-api/internal/arb"
	"sports-arb-api/internal/parlay"
)

func TestGetOpportunities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/opportunities" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(opportunitiesResponse{Data: []arb.Opportunity{
			{
				ID:     "opp-1",
				Market: "total",
				Over:   arb.Leg{Book: "draftkings", AmericanOdds: -105},
				Under:  arb.Leg{Book: "fanduel", AmericanOdds: 110},
				ROIBps: 118,
			},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	opps, err := client.GetOpportunities(context.Background())
	if err != nil {
		t.Fatalf("GetOpportunities: %v", err)
	}
	if len(opps) != 1 || opps[0].ID != "opp-1" || opps[0].Over.AmericanOdds != -105 {
		t.Errorf("decoded opportunities = %+v", opps)
	}
}

func TestGetOpportunitiesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	if _, err := client.GetOpportunities(context.Background()); err == nil {
		t.Error("expected error on upstream 502")
	}
}

func TestQuoteCorrelated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/sgp/quote" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req correlatedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Legs) != 2 {
			t.Errorf("got %d legs, want 2", len(req.Legs))
		}
		json.NewEncoder(w).Encode(correlatedResponse{Quotes: []parlay.BookQuote{
			{Book: "draftkings", AmericanOdds: 450, DecimalOdds: 5.5, LegsAvailable: 2, TotalLegs: 2, Complete: true},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	legs := []parlay.Leg{
		{EventID: "game-1", Market: "spread", Prices: map[string]int{"draftkings": -110}},
		{EventID: "game-1", Market: "total", Prices: map[string]int{"draftkings": -110}},
	}

	quotes, err := client.QuoteCorrelated(context.Background(), legs)
	if err != nil {
		t.Fatalf("QuoteCorrelated: %v", err)
	}
	if len(quotes) != 1 || quotes[0].AmericanOdds != 450 || !quotes[0].Complete {
		t.Errorf("decoded quotes = %+v", quotes)
	}
}

// A nil redis client degrades the cached source to a pass-through.
func TestCachedSourceWithoutRedis(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(opportunitiesResponse{Data: []arb.Opportunity{{ID: "opp-1"}}})
	}))
	defer server.Close()

	source := NewCachedSource(NewClient(server.URL, "k", 5*time.Second), nil, time.Minute)

	for i := 0; i < 2; i++ {
		opps, err := source.GetOpportunities(context.Background())
		if err != nil {
			t.Fatalf("GetOpportunities: %v", err)
		}
		if len(opps) != 1 {
			t.Fatalf("got %d opportunities", len(opps))
		}
	}
	if calls != 2 {
		t.Errorf("upstream called %d times, want 2 (no cache without redis)", calls)
	}
}
