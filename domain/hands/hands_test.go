package hands

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"
)

func TestNotationsCount(t *testing.T) {
	all := Notations()
	if len(all) != 169 {
		t.Fatalf("expected 169 notations, got %d", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, n := range all {
		if seen[n] {
			t.Fatalf("duplicate notation %s", n)
		}
		seen[n] = true
	}
}

func TestNotationsGridOrder(t *testing.T) {
	all := Notations()
	if all[0] != "AA" {
		t.Fatalf("expected AA first, got %s", all[0])
	}
	if all[1] != "AKs" {
		t.Fatalf("expected AKs second, got %s", all[1])
	}
	if all[13] != "AKo" {
		t.Fatalf("expected AKo to open the second row, got %s", all[13])
	}
	if all[168] != "22" {
		t.Fatalf("expected 22 last, got %s", all[168])
	}
}

func TestValid(t *testing.T) {
	for _, n := range []string{"AA", "AKs", "T9o", "22", "72o"} {
		if !Valid(n) {
			t.Fatalf("expected %s to be valid", n)
		}
	}
	for _, n := range []string{"", "A", "AKx", "KAs", "AAs", "AK", "9To", "AKso"} {
		if Valid(n) {
			t.Fatalf("expected %s to be invalid", n)
		}
	}
}

func TestComboCount(t *testing.T) {
	if got := ComboCount("77"); got != 6 {
		t.Fatalf("expected 6 pair combos, got %d", got)
	}
	if got := ComboCount("AKs"); got != 4 {
		t.Fatalf("expected 4 suited combos, got %d", got)
	}
	if got := ComboCount("T9o"); got != 12 {
		t.Fatalf("expected 12 offsuit combos, got %d", got)
	}
	if got := ComboCount("bogus"); got != 0 {
		t.Fatalf("expected 0 combos for invalid notation, got %d", got)
	}
}

func TestComboCountCoversDeck(t *testing.T) {
	total := 0
	for _, n := range Notations() {
		total += ComboCount(n)
	}
	if total != 1326 {
		t.Fatalf("expected 1326 total combos, got %d", total)
	}
}

func TestCombos(t *testing.T) {
	for _, n := range []string{"77", "AKs", "T9o"} {
		combos, err := Combos(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(combos) != ComboCount(n) {
			t.Fatalf("%s: expected %d combos, got %d", n, ComboCount(n), len(combos))
		}
		seen := make(map[[2]poker.Card]bool)
		for _, c := range combos {
			if seen[c] {
				t.Fatalf("%s: duplicate combo %v", n, c)
			}
			if c[0] == c[1] {
				t.Fatalf("%s: combo repeats a card: %v", n, c)
			}
			seen[c] = true
		}
	}
}

func TestCombosInvalidNotation(t *testing.T) {
	if _, err := Combos("XX"); err == nil {
		t.Fatal("expected error for invalid notation")
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	shuffled := Shuffled(r)
	if len(shuffled) != 169 {
		t.Fatalf("expected 169 hands, got %d", len(shuffled))
	}
	seen := make(map[string]bool, len(shuffled))
	for _, n := range shuffled {
		if !Valid(n) {
			t.Fatalf("shuffled produced invalid notation %s", n)
		}
		if seen[n] {
			t.Fatalf("shuffled produced duplicate %s", n)
		}
		seen[n] = true
	}
}
