package entitlements

import "sports-arb-api/internal/arb"

// Plan is a user's subscription tier.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// ParsePlan maps an entitlement string to a plan, defaulting to free for
// anything unrecognized.
func ParsePlan(s string) Plan {
	if s == string(PlanPro) {
		return PlanPro
	}
	return PlanFree
}

// Row is a gated opportunity row. Locked rows keep their rank position but
// withhold books, odds and exact ROI, exposing only a coarse ROI bucket so
// the list still shows what the paid tier would contain.
type Row struct {
	Locked      bool             `json:"locked"`
	Opportunity *arb.Opportunity `json:"opportunity,omitempty"`
	ROIBucket   string           `json:"roi_bucket,omitempty"`
}

// Gate converts a ROI-ranked opportunity list into the rows a plan may see.
// Pro plans see everything. Free plans see the top freeLimit rows in full;
// the rest become locked teasers interleaved at their original rank.
func Gate(plan Plan, opps []arb.Opportunity, freeLimit int) []Row {
	rows := make([]Row, 0, len(opps))
	for i := range opps {
		if plan == PlanPro || i < freeLimit {
			rows = append(rows, Row{Opportunity: &opps[i]})
			continue
		}
		rows = append(rows, Row{Locked: true, ROIBucket: roiBucket(opps[i].ROIBps)})
	}
	return rows
}

func roiBucket(bps int) string {
	switch {
	case bps >= 300:
		return "3%+"
	case bps >= 200:
		return "2-3%"
	case bps >= 100:
		return "1-2%"
	default:
		return "<1%"
	}
}
