package oddsmath

import (
	"errors"
	"math"
	"testing"
)

func TestCompoundParlay(t *testing.T) {
	tests := []struct {
		name     string
		legs     []int
		expected int
	}{
		{"Single leg +150", []int{150}, 150},
		{"Single leg -110", []int{-110}, -110},
		{"Two standard favorites", []int{-110, -110}, 264},
		{"Three leg mix", []int{-110, -110, 150}, 811},
		{"Heavy favorites stay negative", []int{-500, -500}, -227},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompoundParlay(tt.legs)
			if err != nil {
				t.Fatalf("CompoundParlay(%v) error: %v", tt.legs, err)
			}
			if result != tt.expected {
				t.Errorf("CompoundParlay(%v) = %d, want %d", tt.legs, result, tt.expected)
			}
		})
	}
}

func TestCompoundParlayEmpty(t *testing.T) {
	_, err := CompoundParlay(nil)
	if !errors.Is(err, ErrEmptyParlay) {
		t.Errorf("CompoundParlay(nil) error = %v, want ErrEmptyParlay", err)
	}

	_, err = CompoundParlay([]int{})
	if !errors.Is(err, ErrEmptyParlay) {
		t.Errorf("CompoundParlay([]) error = %v, want ErrEmptyParlay", err)
	}
}

func TestCompoundParlayZeroLeg(t *testing.T) {
	_, err := CompoundParlay([]int{-110, 0, 150})
	if !errors.Is(err, ErrZeroOdds) {
		t.Errorf("CompoundParlay with zero leg error = %v, want ErrZeroOdds", err)
	}
}

// Parlay monotonicity: adding any leg with decimal odds > 1 strictly
// increases the compounded multiplier.
func TestCompoundDecimalMonotonic(t *testing.T) {
	base := []int{-110, 150}
	baseDecimal, err := CompoundDecimal(base)
	if err != nil {
		t.Fatal(err)
	}

	for _, extra := range []int{-500, -110, 100, 150, 900} {
		extended, err := CompoundDecimal(append([]int{}, append(base, extra)...))
		if err != nil {
			t.Fatal(err)
		}
		if extended <= baseDecimal {
			t.Errorf("adding leg %d: decimal %v not greater than base %v", extra, extended, baseDecimal)
		}
	}
}

func TestCompoundDecimalMatchesProduct(t *testing.T) {
	legs := []int{-110, 150, -200, 300}
	want := ToDecimal(-110) * ToDecimal(150) * ToDecimal(-200) * ToDecimal(300)

	got, err := CompoundDecimal(legs)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CompoundDecimal(%v) = %v, want %v", legs, got, want)
	}
}
