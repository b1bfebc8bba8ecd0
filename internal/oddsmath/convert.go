package oddsmath

import (
	"errors"
	"math"
)

// ErrZeroOdds is returned for American odds of 0, which have no economic
// meaning and are treated as "no price" upstream.
var ErrZeroOdds = errors.New("american odds of 0 are undefined")

// ErrEmptyParlay is returned when a parlay price is requested for zero legs.
var ErrEmptyParlay = errors.New("parlay requires at least one leg")

// ToDecimal converts American odds to decimal odds.
// Example: +150 → 2.5, -150 → 1.667
//
// Positive odds state profit per $100 staked; negative odds state the stake
// required to profit $100. The result is always > 1 for valid input.
// Behavior for odds == 0 is undefined; callers must guard (see ErrZeroOdds).
func ToDecimal(american int) float64 {
	if american > 0 {
		return 1.0 + float64(american)/100.0
	}
	return 1.0 + 100.0/math.Abs(float64(american))
}

// DecimalToAmerican converts decimal odds back to the American format.
// Decimal odds >= 2 map to the positive (underdog) branch, below 2 to the
// negative (favorite) branch. Inverse of ToDecimal up to integer rounding.
func DecimalToAmerican(decimal float64) int {
	if decimal >= 2.0 {
		return int(math.Round((decimal - 1.0) * 100.0))
	}
	return int(math.Round(-100.0 / (decimal - 1.0)))
}

// ImpliedProbability converts American odds to the implied win probability.
// Example: -150 → 0.6, +150 → 0.4. Returns 0 for zero odds.
func ImpliedProbability(american int) float64 {
	if american == 0 {
		return 0
	}
	if american > 0 {
		return 100.0 / (float64(american) + 100.0)
	}
	abs := math.Abs(float64(american))
	return abs / (abs + 100.0)
}
