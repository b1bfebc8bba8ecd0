package arb

import (
	"sports-arb-api/internal/oddsmath"
)

// StakePlan is the pair of stakes covering both sides of an opportunity and
// the profit guaranteed by the worse outcome.
type StakePlan struct {
	OverStake        float64 `json:"over_stake"`
	UnderStake       float64 `json:"under_stake"`
	TotalStake       float64 `json:"total_stake"`
	GuaranteedProfit float64 `json:"guaranteed_profit"`
	LimitedByBook    bool    `json:"limited_by_book,omitempty"`
}

// BuildPlan computes the equal-profit split of totalStake for an opportunity.
//
// When a leg's book limit caps its stake, the whole plan is scaled down so the
// equal-payout property survives; the result is flagged LimitedByBook.
func BuildPlan(opp Opportunity, totalStake float64) StakePlan {
	overStake, underStake := oddsmath.SplitEqualProfit(
		opp.Over.AmericanOdds, opp.Under.AmericanOdds, totalStake)

	limited := false
	scale := 1.0
	if opp.Over.MaxStake > 0 && overStake > opp.Over.MaxStake {
		scale = opp.Over.MaxStake / overStake
		limited = true
	}
	if opp.Under.MaxStake > 0 && underStake*scale > opp.Under.MaxStake {
		scale = opp.Under.MaxStake / underStake
		limited = true
	}
	overStake *= scale
	underStake *= scale

	return StakePlan{
		OverStake:     overStake,
		UnderStake:    underStake,
		TotalStake:    overStake + underStake,
		LimitedByBook: limited,
		GuaranteedProfit: oddsmath.Profit(
			opp.Over.AmericanOdds, opp.Under.AmericanOdds, overStake, underStake),
	}
}

// PlanFromStake rebuilds the plan from one user-edited stake, rounding the
// edited side first and re-solving the other from the rounded value.
func PlanFromStake(opp Opportunity, editedStake float64, overEdited bool, mode oddsmath.RoundMode) StakePlan {
	var overStake, underStake float64
	if overEdited {
		overStake, underStake = oddsmath.RoundStakePair(
			editedStake, opp.Over.AmericanOdds, opp.Under.AmericanOdds, mode)
	} else {
		underStake, overStake = oddsmath.RoundStakePair(
			editedStake, opp.Under.AmericanOdds, opp.Over.AmericanOdds, mode)
	}

	return StakePlan{
		OverStake:  overStake,
		UnderStake: underStake,
		TotalStake: overStake + underStake,
		GuaranteedProfit: oddsmath.Profit(
			opp.Over.AmericanOdds, opp.Under.AmericanOdds, overStake, underStake),
	}
}
