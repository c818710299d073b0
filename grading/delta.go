package grading

import (
	"sort"

	"github.com/luca-patrignani/range-trainer/domain/strategy"
)

// DiffHands returns the sorted set of hands whose expected action differs
// structurally between start and target. A hand absent from a range, or
// black in either range, is never part of the diff.
func DiffHands(start, target strategy.Range) []string {
	seen := make(map[string]bool, len(start)+len(target))
	var diff []string
	consider := func(hand string) {
		if seen[hand] {
			return
		}
		seen[hand] = true
		a, b := start[hand], target[hand]
		if a.IsBlack() || b.IsBlack() {
			return
		}
		if !a.Equal(b) {
			diff = append(diff, hand)
		}
	}
	for hand := range start {
		consider(hand)
	}
	for hand := range target {
		consider(hand)
	}
	sort.Strings(diff)
	return diff
}

// GradeDelta grades only the hands that changed between the start and
// target ranges. Every unchanged hand is forced to black in the reference
// passed to GradeSubmission, so answers for unchanged hands are silently
// ignored rather than scored.
func GradeDelta(start, target strategy.Range, answers map[string]string, opts ...option) Summary {
	changed := make(map[string]bool)
	for _, hand := range DiffHands(start, target) {
		changed[hand] = true
	}

	filtered := make(strategy.Range, len(start)+len(target))
	for hand := range start {
		filtered[hand] = strategy.Pure(strategy.ActionBlack)
	}
	for hand := range target {
		filtered[hand] = strategy.Pure(strategy.ActionBlack)
	}
	for hand := range changed {
		filtered[hand] = target[hand]
	}

	return GradeSubmission(filtered, answers, opts...)
}
