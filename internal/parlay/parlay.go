package parlay

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"sports-arb-api/internal/oddsmath"
)

// Leg is one selection in a parlay, carrying the American price quoted by
// each sportsbook that covers it. A book missing from the map (or quoting 0)
// has no price for the leg.
type Leg struct {
	EventID   string         `json:"event_id"`
	Market    string         `json:"market"`
	Selection string         `json:"selection"`
	Prices    map[string]int `json:"prices"` // book key → American odds
}

// BookQuote is one sportsbook's price for a parlay, with coverage attached.
// A partial quote is computed only from the legs the book covers and must
// never be presented as equivalent to a complete price.
type BookQuote struct {
	Book          string  `json:"book"`
	AmericanOdds  int     `json:"american_odds"`
	DecimalOdds   float64 `json:"decimal_odds"`
	LegsAvailable int     `json:"legs_available"`
	TotalLegs     int     `json:"total_legs"`
	Complete      bool    `json:"complete"`
}

// CorrelatedQuoter prices a same-game parlay through an external
// odds-provider. Correlated legs invalidate the independence assumption
// behind decimal multiplication, so they are never compounded locally.
type CorrelatedQuoter interface {
	QuoteCorrelated(ctx context.Context, legs []Leg) ([]BookQuote, error)
}

// ErrCorrelatedLegs is returned when a leg set contains multiple legs from
// the same event; such sets must go through a CorrelatedQuoter.
var ErrCorrelatedLegs = errors.New("same-game legs require a correlated quote")

// HasCorrelatedLegs reports whether any two legs share an event.
func HasCorrelatedLegs(legs []Leg) bool {
	seen := make(map[string]bool, len(legs))
	for _, leg := range legs {
		if leg.EventID != "" && seen[leg.EventID] {
			return true
		}
		seen[leg.EventID] = true
	}
	return false
}

// PriceAcrossBooks compounds an independent leg set for every sportsbook that
// quotes at least one leg.
//
// Books quoting every leg are classified complete; the rest are partial and
// their price covers only the quoted subset. Complete books always rank ahead
// of partial ones regardless of numeric odds; within a tier, higher coverage
// then higher decimal odds win.
func PriceAcrossBooks(legs []Leg) ([]BookQuote, error) {
	if len(legs) == 0 {
		return nil, oddsmath.ErrEmptyParlay
	}
	if HasCorrelatedLegs(legs) {
		return nil, ErrCorrelatedLegs
	}

	books := make(map[string][]int)
	for _, leg := range legs {
		for book, odds := range leg.Prices {
			if odds == 0 {
				continue
			}
			books[book] = append(books[book], odds)
		}
	}

	quotes := make([]BookQuote, 0, len(books))
	for book, covered := range books {
		decimal, err := oddsmath.CompoundDecimal(covered)
		if err != nil {
			return nil, fmt.Errorf("compounding %s: %w", book, err)
		}
		quotes = append(quotes, BookQuote{
			Book:          book,
			AmericanOdds:  oddsmath.DecimalToAmerican(decimal),
			DecimalOdds:   decimal,
			LegsAvailable: len(covered),
			TotalLegs:     len(legs),
			Complete:      len(covered) == len(legs),
		})
	}

	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].Complete != quotes[j].Complete {
			return quotes[i].Complete
		}
		if quotes[i].LegsAvailable != quotes[j].LegsAvailable {
			return quotes[i].LegsAvailable > quotes[j].LegsAvailable
		}
		if quotes[i].DecimalOdds != quotes[j].DecimalOdds {
			return quotes[i].DecimalOdds > quotes[j].DecimalOdds
		}
		return quotes[i].Book < quotes[j].Book
	})

	return quotes, nil
}
