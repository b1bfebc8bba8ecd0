package oddsmath

import "math"

// RoundMode selects how a user-facing stake is rounded before the opposite
// leg is re-solved.
type RoundMode string

const (
	RoundDollar RoundMode = "dollar" // whole dollars
	RoundCent   RoundMode = "cent"   // two decimals
)

// Payout returns the total return (stake included) for a winning bet.
// Callers clamp stake to >= 0 before calling.
func Payout(american int, stake float64) float64 {
	return stake * ToDecimal(american)
}

// Profit returns the guaranteed profit of a two-sided position.
//
// Only one side wins, so the guaranteed (not expected) profit is bounded by
// the worse leg's payout minus the total outlay.
func Profit(overOdds, underOdds int, overStake, underStake float64) float64 {
	overPayout := Payout(overOdds, overStake)
	underPayout := Payout(underOdds, underStake)
	return math.Min(overPayout, underPayout) - (overStake + underStake)
}

// SplitEqualProfit divides totalStake across the two sides of a line so that
// both outcomes return the same total payout. This is the risk-symmetric and
// profit-maximizing allocation for a fixed total stake.
func SplitEqualProfit(overOdds, underOdds int, totalStake float64) (overStake, underStake float64) {
	decimalOver := ToDecimal(overOdds)
	decimalUnder := ToDecimal(underOdds)

	overStake = totalStake * decimalUnder / (decimalOver + decimalUnder)
	underStake = totalStake - overStake
	return overStake, underStake
}

// SolveOppositeStake returns the stake on the opposite leg that equalizes
// payout with a known stake. Used when the user edits one leg by hand.
func SolveOppositeStake(knownStake float64, knownOdds, oppositeOdds int) float64 {
	return knownStake * ToDecimal(knownOdds) / ToDecimal(oppositeOdds)
}

// RoundStakePair rounds the edited stake to the requested mode and re-solves
// the opposite stake from the rounded value.
//
// Rounding both sides independently from the unrounded pair desynchronizes the
// equal-payout property; the opposite side must always be derived from the
// already-rounded edited side.
func RoundStakePair(editedStake float64, editedOdds, oppositeOdds int, mode RoundMode) (edited, opposite float64) {
	edited = roundStake(editedStake, mode)
	opposite = roundStake(SolveOppositeStake(edited, editedOdds, oppositeOdds), mode)
	return edited, opposite
}

func roundStake(stake float64, mode RoundMode) float64 {
	if mode == RoundDollar {
		return math.Round(stake)
	}
	return math.Round(stake*100) / 100
}
