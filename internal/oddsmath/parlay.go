package oddsmath

// CompoundDecimal multiplies leg decimals into a single parlay multiplier.
// Valid only for independent (cross-game) legs: correlated same-game legs
// break the independence assumption and must be priced externally.
func CompoundDecimal(legOdds []int) (float64, error) {
	if len(legOdds) == 0 {
		return 0, ErrEmptyParlay
	}

	total := 1.0
	for _, odds := range legOdds {
		if odds == 0 {
			return 0, ErrZeroOdds
		}
		total *= ToDecimal(odds)
	}
	return total, nil
}

// CompoundParlay compounds independent legs into a single American price.
func CompoundParlay(legOdds []int) (int, error) {
	total, err := CompoundDecimal(legOdds)
	if err != nil {
		return 0, err
	}
	return DecimalToAmerican(total), nil
}
