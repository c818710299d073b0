package grading

import "github.com/luca-patrignani/range-trainer/domain/strategy"

// Breakdown accumulates per-action results across a graded submission.
type Breakdown struct {
	Expected   int
	Correct    int
	HalfCredit int
	Accuracy   float64
}

// Summary aggregates a graded submission over a reference range.
type Summary struct {
	Attempted  int
	Unanswered int

	Correct    int
	HalfCredit int
	Wrong      int
	Buckets    map[Bucket]int

	TotalScore float64
	Accuracy   float64

	// ByAction is keyed by all five actions; black only ever counts
	// Expected since black hands are never graded.
	ByAction map[strategy.Action]*Breakdown

	// Results keeps each attempted hand's ScoreResult so a front end can
	// show the Explain text, keyed by hand notation.
	Results map[string]ScoreResult
}

// GradeSubmission grades every answer in answers against the expected
// range and aggregates the outcome.
//
// Black hands in the reference are structurally invisible: they count
// toward black's Expected tally and nothing else. Hands missing from
// answers count as Unanswered. Blank answers count as Unanswered too, as
// the quiz layer stores a skip either way. Every other hand is scored with
// ScoreChoice; perfect results count as Correct, good and partial as
// HalfCredit, miss as Wrong.
func GradeSubmission(expected strategy.Range, answers map[string]string, opts ...option) Summary {
	s := Summary{
		Buckets:  make(map[Bucket]int),
		ByAction: make(map[strategy.Action]*Breakdown),
		Results:  make(map[string]ScoreResult),
	}
	for _, a := range strategy.Order {
		s.ByAction[a] = &Breakdown{}
	}
	s.ByAction[strategy.ActionBlack] = &Breakdown{}

	for hand, expectedAction := range expected {
		if expectedAction.IsBlack() {
			s.ByAction[strategy.ActionBlack].Expected++
			continue
		}
		breakdown := s.ByAction[expectedAction.Primary()]
		breakdown.Expected++

		raw, ok := answers[hand]
		if !ok || raw == "" {
			s.Unanswered++
			continue
		}
		s.Attempted++

		result := ScoreChoice(expectedAction.Distribution(), ParseChoice(raw), opts...)
		s.Results[hand] = result
		s.TotalScore += result.Score
		s.Buckets[result.Bucket]++
		switch result.Bucket {
		case BucketPerfect:
			s.Correct++
			breakdown.Correct++
		case BucketGood, BucketPartial:
			s.HalfCredit++
			breakdown.HalfCredit++
		default:
			s.Wrong++
		}
	}

	for _, breakdown := range s.ByAction {
		if breakdown.Expected == 0 {
			breakdown.Accuracy = 1.0
			continue
		}
		breakdown.Accuracy = (float64(breakdown.Correct) + 0.5*float64(breakdown.HalfCredit)) / float64(breakdown.Expected)
	}
	if s.Attempted > 0 {
		s.Accuracy = s.TotalScore / float64(s.Attempted)
	}
	return s
}
