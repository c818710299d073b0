package grading

import (
	"testing"

	"github.com/luca-patrignani/range-trainer/domain/strategy"
)

func deltaRanges() (strategy.Range, strategy.Range) {
	start := strategy.Range{
		"AA":  strategy.Pure(strategy.ActionRaise),
		"KQs": strategy.Pure(strategy.ActionFold),
		"A5s": strategy.Blend(map[strategy.Action]int{strategy.ActionRaise: 55, strategy.ActionFold: 45}),
		"J9s": strategy.Pure(strategy.ActionBlack),
		"72o": strategy.Pure(strategy.ActionFold),
	}
	target := strategy.Range{
		// KQs flips fold to raise, A5s changes its blend, J9s is black in
		// start; AA and 72o are unchanged.
		"AA":  strategy.Pure(strategy.ActionRaise),
		"KQs": strategy.Pure(strategy.ActionRaise),
		"A5s": strategy.Blend(map[strategy.Action]int{strategy.ActionRaise: 80, strategy.ActionFold: 20}),
		"J9s": strategy.Pure(strategy.ActionRaise),
		"72o": strategy.Pure(strategy.ActionFold),
	}
	return start, target
}

func TestDiffHands(t *testing.T) {
	start, target := deltaRanges()
	diff := DiffHands(start, target)
	if len(diff) != 2 || diff[0] != "A5s" || diff[1] != "KQs" {
		t.Fatalf("expected [A5s KQs], got %v", diff)
	}
}

func TestDiffHandsPureVsBlend(t *testing.T) {
	start := strategy.Range{"AA": strategy.Pure(strategy.ActionRaise)}
	target := strategy.Range{"AA": strategy.Blend(map[strategy.Action]int{strategy.ActionRaise: 100})}
	diff := DiffHands(start, target)
	if len(diff) != 1 {
		t.Fatalf("pure vs blend must always differ, got %v", diff)
	}
}

func TestDiffHandsMissingHandExcluded(t *testing.T) {
	start := strategy.Range{"AA": strategy.Pure(strategy.ActionRaise)}
	target := strategy.Range{"KK": strategy.Pure(strategy.ActionRaise)}
	if diff := DiffHands(start, target); len(diff) != 0 {
		t.Fatalf("hands absent from one range must not diff, got %v", diff)
	}
}

func TestGradeDeltaExclusivity(t *testing.T) {
	start, target := deltaRanges()
	// Answers cover every hand, including unchanged and black ones.
	answers := map[string]string{
		"AA":  "raise",
		"KQs": "raise",
		"A5s": "raise",
		"J9s": "raise",
		"72o": "fold",
	}
	s := GradeDelta(start, target, answers)

	if s.Attempted+s.Unanswered != 2 {
		t.Fatalf("delta must grade exactly the diff set, got attempted %d unanswered %d", s.Attempted, s.Unanswered)
	}
	if s.Attempted != 2 {
		t.Fatalf("expected both changed hands attempted, got %d", s.Attempted)
	}
	// KQs: pure raise answered raise, perfect. A5s: 80/20 target blend
	// answered raise, perfect.
	if s.Correct != 2 {
		t.Fatalf("expected 2 correct, got %+v", s)
	}
	if _, ok := s.Results["AA"]; ok {
		t.Fatal("unchanged hand must never be scored")
	}
}

func TestGradeDeltaUnansweredDiffHands(t *testing.T) {
	start, target := deltaRanges()
	s := GradeDelta(start, target, map[string]string{"KQs": "raise"})
	if s.Attempted != 1 || s.Unanswered != 1 {
		t.Fatalf("expected 1 attempted and 1 unanswered, got %d/%d", s.Attempted, s.Unanswered)
	}
}

func TestGradeDeltaIdenticalRanges(t *testing.T) {
	start, _ := deltaRanges()
	s := GradeDelta(start, start, map[string]string{"AA": "raise"})
	if s.Attempted != 0 || s.Unanswered != 0 {
		t.Fatalf("identical ranges must grade nothing, got %+v", s)
	}
}
