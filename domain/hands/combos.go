package hands

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Rank values follow the card convention used across the project:
// Ace is 1, 2-10 face value, Jack 11, Queen 12, King 13. Suits are 0-3.
func rankValue(r byte) uint8 {
	switch r {
	case 'A':
		return 1
	case 'K':
		return 13
	case 'Q':
		return 12
	case 'J':
		return 11
	case 'T':
		return 10
	default:
		return r - '0'
	}
}

// Combos expands a notation into every concrete hole-card combination it
// stands for.
func Combos(notation string) ([][2]poker.Card, error) {
	hi, lo, suited, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	hiRank, loRank := rankValue(hi), rankValue(lo)

	makePair := func(s1, s2 uint8) ([2]poker.Card, error) {
		c1, err := poker.MakeCard(poker.Suit(s1), poker.Rank(hiRank))
		if err != nil {
			return [2]poker.Card{}, fmt.Errorf("invalid card for %q: %w", notation, err)
		}
		c2, err := poker.MakeCard(poker.Suit(s2), poker.Rank(loRank))
		if err != nil {
			return [2]poker.Card{}, fmt.Errorf("invalid card for %q: %w", notation, err)
		}
		return [2]poker.Card{c1, c2}, nil
	}

	var combos [][2]poker.Card
	switch {
	case hi == lo:
		for s1 := uint8(0); s1 < 4; s1++ {
			for s2 := s1 + 1; s2 < 4; s2++ {
				c, err := makePair(s1, s2)
				if err != nil {
					return nil, err
				}
				combos = append(combos, c)
			}
		}
	case suited:
		for s := uint8(0); s < 4; s++ {
			c, err := makePair(s, s)
			if err != nil {
				return nil, err
			}
			combos = append(combos, c)
		}
	default:
		for s1 := uint8(0); s1 < 4; s1++ {
			for s2 := uint8(0); s2 < 4; s2++ {
				if s1 == s2 {
					continue
				}
				c, err := makePair(s1, s2)
				if err != nil {
					return nil, err
				}
				combos = append(combos, c)
			}
		}
	}
	return combos, nil
}
