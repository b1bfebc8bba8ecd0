package arb

import (
	"sort"
	"time"
)

// Leg is one side of a two-outcome line at a specific sportsbook.
type Leg struct {
	Book         string  `json:"book"`
	AmericanOdds int     `json:"american_odds"`
	DesktopLink  string  `json:"desktop_link,omitempty"`
	MobileLink   string  `json:"mobile_link,omitempty"`
	MaxStake     float64 `json:"max_stake,omitempty"` // 0 = no book limit
}

// Opportunity pairs the two sides of the same line across books. ROI is
// computed upstream by the feed and carried as data, in basis points.
type Opportunity struct {
	ID        string    `json:"id"`
	Sport     string    `json:"sport"`
	EventName string    `json:"event_name"`
	Market    string    `json:"market"`        // "total", "spread", "moneyline"
	Line      float64   `json:"line"`          // e.g. 221.5 for a total
	Over      Leg       `json:"over"`
	Under     Leg       `json:"under"`
	ROIBps    int       `json:"roi_bps"`
	StartsAt  time.Time `json:"starts_at"`
}

// FilterValid drops opportunities with a missing price on either side.
// Zero odds are "no price" and must never reach the stake math.
func FilterValid(opps []Opportunity) []Opportunity {
	valid := make([]Opportunity, 0, len(opps))
	for _, opp := range opps {
		if opp.Over.AmericanOdds == 0 || opp.Under.AmericanOdds == 0 {
			continue
		}
		valid = append(valid, opp)
	}
	return valid
}

// SortByROI orders opportunities by ROI descending, in place.
func SortByROI(opps []Opportunity) {
	sort.Slice(opps, func(i, j int) bool {
		if opps[i].ROIBps != opps[j].ROIBps {
			return opps[i].ROIBps > opps[j].ROIBps
		}
		return opps[i].ID < opps[j].ID
	})
}
