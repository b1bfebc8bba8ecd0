package oddsmath

import (
	"math"
	"testing"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		expected float64
		delta    float64
	}{
		{"Even money +100", 100, 2.0, 0.0001},
		{"Even money -100", -100, 2.0, 0.0001},
		{"Underdog +150", 150, 2.5, 0.0001},
		{"Favorite -150", -150, 1.6667, 0.0001},
		{"Standard -110", -110, 1.9091, 0.0001},
		{"Underdog +105", 105, 2.05, 0.0001},
		{"Heavy favorite -300", -300, 1.3333, 0.0001},
		{"Big underdog +300", 300, 4.0, 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToDecimal(tt.american)
			if math.Abs(result-tt.expected) > tt.delta {
				t.Errorf("ToDecimal(%d) = %v, want %v", tt.american, result, tt.expected)
			}
			if result <= 1.0 {
				t.Errorf("ToDecimal(%d) = %v, decimal odds must be > 1", tt.american, result)
			}
		})
	}
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		expected int
	}{
		{"Even money", 2.0, 100},
		{"Underdog 2.5", 2.5, 150},
		{"Favorite 1.667", 1.0 + 100.0/150.0, -150},
		{"Standard 1.909", 1.0 + 100.0/110.0, -110},
		{"Big underdog 4.0", 4.0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DecimalToAmerican(tt.decimal)
			if result != tt.expected {
				t.Errorf("DecimalToAmerican(%v) = %d, want %d", tt.decimal, result, tt.expected)
			}
		})
	}
}

// American odds round-trip through decimal for the whole standard range.
// The positive branch covers decimals >= 2, the negative branch the rest.
// +100 and -100 are the same even-money price (decimal 2.0), so -100
// canonicalizes to +100 and is checked separately.
func TestAmericanDecimalRoundTrip(t *testing.T) {
	if got := DecimalToAmerican(ToDecimal(100)); got != 100 {
		t.Errorf("round trip +100 → %d", got)
	}
	if got := DecimalToAmerican(ToDecimal(-100)); got != 100 {
		t.Errorf("even money -100 → %d, want canonical +100", got)
	}
	for odds := 105; odds <= 2000; odds += 5 {
		if got := DecimalToAmerican(ToDecimal(odds)); got != odds {
			t.Errorf("round trip +%d → %d", odds, got)
		}
		if got := DecimalToAmerican(ToDecimal(-odds)); got != -odds {
			t.Errorf("round trip -%d → %d", odds, got)
		}
	}
}

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american int
		expected float64
		delta    float64
	}{
		{"Favorite -150", -150, 0.6, 0.001},
		{"Underdog +150", 150, 0.4, 0.001},
		{"Even -100", -100, 0.5, 0.001},
		{"Even +100", 100, 0.5, 0.001},
		{"Standard -110", -110, 0.5238, 0.001},
		{"Zero odds", 0, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ImpliedProbability(tt.american)
			if math.Abs(result-tt.expected) > tt.delta {
				t.Errorf("ImpliedProbability(%d) = %v, want %v", tt.american, result, tt.expected)
			}
		})
	}
}
