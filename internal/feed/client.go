package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sports-arb-api/internal/arb"
	"sports-arb-api/internal/parlay"
)

// Client talks to the external odds feed that computes opportunities and
// correlated (same-game) parlay prices. ROI comes from the feed; this service
// only re-derives stake plans on top of it.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a feed client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type opportunitiesResponse struct {
	Data []arb.Opportunity `json:"data"`
}

// GetOpportunities fetches the current cross-book arbitrage opportunities.
func (c *Client) GetOpportunities(ctx context.Context) ([]arb.Opportunity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/opportunities", nil)
	if err != nil {
		return nil, fmt.Errorf("building opportunities request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching opportunities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var decoded opportunitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding opportunities: %w", err)
	}

	return decoded.Data, nil
}

type correlatedRequest struct {
	Legs []parlay.Leg `json:"legs"`
}

type correlatedResponse struct {
	Quotes []parlay.BookQuote `json:"quotes"`
}

// QuoteCorrelated fetches a same-game parlay price from the feed provider.
// Correlated legs cannot be compounded locally, so this is the only path for
// pricing them. Implements parlay.CorrelatedQuoter.
func (c *Client) QuoteCorrelated(ctx context.Context, legs []parlay.Leg) ([]parlay.BookQuote, error) {
	body, err := json.Marshal(correlatedRequest{Legs: legs})
	if err != nil {
		return nil, fmt.Errorf("encoding correlated request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/sgp/quote", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building correlated request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching correlated quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var decoded correlatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding correlated quote: %w", err)
	}

	return decoded.Quotes, nil
}
