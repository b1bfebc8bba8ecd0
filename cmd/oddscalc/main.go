// oddscalc is a command-line stake calculator: equal-profit splits for
// two-sided lines and compounded prices for cross-game parlays.
//
// Usage:
//
//	oddscalc split <overOdds> <underOdds> <totalStake>
//	oddscalc solve <editedStake> <editedOdds> <oppositeOdds>
//	oddscalc parlay <odds> [<odds> ...]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"sports-arb-api/internal/oddsmath"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "split":
		runSplit(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	case "parlay":
		runParlay(os.Args[2:])
	default:
		usage()
	}
}

func runSplit(args []string) {
	if len(args) != 3 {
		usage()
	}
	overOdds := parseOdds(args[0])
	underOdds := parseOdds(args[1])
	totalStake, err := strconv.ParseFloat(args[2], 64)
	if err != nil || totalStake <= 0 {
		log.Fatalf("total stake must be a positive number, got %q", args[2])
	}

	overStake, underStake := oddsmath.SplitEqualProfit(overOdds, underOdds, totalStake)
	profit := oddsmath.Profit(overOdds, underOdds, overStake, underStake)

	fmt.Printf("over  %+d: stake $%.2f → payout $%.2f\n", overOdds, overStake, oddsmath.Payout(overOdds, overStake))
	fmt.Printf("under %+d: stake $%.2f → payout $%.2f\n", underOdds, underStake, oddsmath.Payout(underOdds, underStake))
	fmt.Printf("guaranteed profit: $%.2f (%.2f%%)\n", profit, profit/totalStake*100)
}

func runSolve(args []string) {
	if len(args) != 3 {
		usage()
	}
	editedStake, err := strconv.ParseFloat(args[0], 64)
	if err != nil || editedStake <= 0 {
		log.Fatalf("stake must be a positive number, got %q", args[0])
	}
	editedOdds := parseOdds(args[1])
	oppositeOdds := parseOdds(args[2])

	opposite := oddsmath.SolveOppositeStake(editedStake, editedOdds, oppositeOdds)
	profit := oddsmath.Profit(editedOdds, oppositeOdds, editedStake, opposite)

	fmt.Printf("opposite stake: $%.2f\n", opposite)
	fmt.Printf("total outlay:   $%.2f\n", editedStake+opposite)
	fmt.Printf("guaranteed profit: $%.2f\n", profit)
}

func runParlay(args []string) {
	if len(args) == 0 {
		usage()
	}
	legs := make([]int, len(args))
	for i, arg := range args {
		legs[i] = parseOdds(arg)
	}

	decimal, err := oddsmath.CompoundDecimal(legs)
	if err != nil {
		log.Fatalf("compounding parlay: %v", err)
	}

	fmt.Printf("%d legs → decimal %.4f → american %+d\n",
		len(legs), decimal, oddsmath.DecimalToAmerican(decimal))
}

func parseOdds(s string) int {
	odds, err := strconv.Atoi(s)
	if err != nil || odds == 0 {
		log.Fatalf("odds must be a non-zero integer, got %q", s)
	}
	return odds
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  oddscalc split <overOdds> <underOdds> <totalStake>")
	fmt.Fprintln(os.Stderr, "  oddscalc solve <editedStake> <editedOdds> <oppositeOdds>")
	fmt.Fprintln(os.Stderr, "  oddscalc parlay <odds> [<odds> ...]")
	os.Exit(2)
}
