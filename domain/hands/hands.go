package hands

import (
	"fmt"
	"math/rand"
	"strings"
)

// gridRanks lists the thirteen ranks in chart order, highest first.
const gridRanks = "AKQJT98765432"

// Notations returns the 169 canonical hand names in 13x13 grid order:
// pairs on the diagonal, suited hands above it, offsuit hands below.
func Notations() []string {
	all := make([]string, 0, 169)
	for i := 0; i < len(gridRanks); i++ {
		for j := 0; j < len(gridRanks); j++ {
			switch {
			case i == j:
				all = append(all, string(gridRanks[i])+string(gridRanks[j]))
			case i < j:
				all = append(all, string(gridRanks[i])+string(gridRanks[j])+"s")
			default:
				all = append(all, string(gridRanks[j])+string(gridRanks[i])+"o")
			}
		}
	}
	return all
}

// Parse splits a canonical notation into its high and low rank characters
// and whether the hand is suited. Pairs report suited false.
func Parse(notation string) (hi, lo byte, suited bool, err error) {
	n := len(notation)
	if n < 2 || n > 3 {
		return 0, 0, false, fmt.Errorf("invalid hand notation %q", notation)
	}
	hi, lo = notation[0], notation[1]
	hiIdx := strings.IndexByte(gridRanks, hi)
	loIdx := strings.IndexByte(gridRanks, lo)
	if hiIdx < 0 || loIdx < 0 || hiIdx > loIdx {
		return 0, 0, false, fmt.Errorf("invalid hand notation %q", notation)
	}
	if hi == lo {
		if n != 2 {
			return 0, 0, false, fmt.Errorf("pair notation %q must not carry a suffix", notation)
		}
		return hi, lo, false, nil
	}
	if n != 3 || (notation[2] != 's' && notation[2] != 'o') {
		return 0, 0, false, fmt.Errorf("non-pair notation %q needs an s or o suffix", notation)
	}
	return hi, lo, notation[2] == 's', nil
}

// Valid reports whether notation is one of the 169 canonical hand names.
func Valid(notation string) bool {
	_, _, _, err := Parse(notation)
	return err == nil
}

// ComboCount returns how many concrete hole-card combinations the notation
// stands for: 6 for pairs, 4 suited, 12 offsuit. Invalid notations count 0.
func ComboCount(notation string) int {
	hi, lo, suited, err := Parse(notation)
	if err != nil {
		return 0
	}
	switch {
	case hi == lo:
		return 6
	case suited:
		return 4
	default:
		return 12
	}
}

// Shuffled returns the 169 notations in a random drill order.
func Shuffled(r *rand.Rand) []string {
	all := Notations()
	perm := r.Perm(len(all))
	shuffled := make([]string, len(all))
	for i, p := range perm {
		shuffled[i] = all[p]
	}
	return shuffled
}
