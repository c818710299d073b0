package grading

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/luca-patrignani/range-trainer/domain/strategy"
)

// Choice is what the trainee declared for a hand: one concrete action, or
// ChoiceMixed meaning "this hand is meaningfully split between actions".
type Choice string

const ChoiceMixed Choice = "mixed"

// ParseChoice normalizes a raw answer. Blend-signature answers such as
// "raise-fold" do not state frequencies, so they carry exactly the same
// information as "mixed" and are scored as such.
func ParseChoice(raw string) Choice {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == string(ChoiceMixed) || strings.Contains(s, "-") {
		return ChoiceMixed
	}
	return Choice(s)
}

// Bucket is the categorical grade attached to a single scored hand.
type Bucket string

const (
	BucketPerfect Bucket = "perfect"
	BucketGood    Bucket = "good"
	BucketPartial Bucket = "partial"
	BucketMiss    Bucket = "miss"
)

// ScoreResult is the outcome of scoring one hand: a fractional score in
// [0,1], its grade bucket, and an explanation naming the reference
// distribution and the answer.
type ScoreResult struct {
	Score   float64
	Bucket  Bucket
	Explain string
}

type config struct {
	mixMin       float64
	strong       float64
	moderate     float64
	tinyMin      float64
	mixedPenalty float64
}

func defaultConfig() config {
	return config{
		mixMin:       0.15,
		strong:       0.75,
		moderate:     0.60,
		tinyMin:      0.10,
		mixedPenalty: 0.0,
	}
}

type option func(config) config

// WithMixMin sets the minimum probability on the second action for a hand
// to count as meaningfully mixed.
func WithMixMin(v float64) option {
	return func(c config) config {
		c.mixMin = v
		return c
	}
}

// WithStrong sets the top-action probability above which a spot is near-pure.
func WithStrong(v float64) option {
	return func(c config) config {
		c.strong = v
		return c
	}
}

// WithModerate sets the top-action probability above which a spot is a
// clear-but-not-pure favorite.
func WithModerate(v float64) option {
	return func(c config) config {
		c.moderate = v
		return c
	}
}

// WithTinyMin sets the probability floor below which a chosen action caps
// the score at 0.25.
func WithTinyMin(v float64) option {
	return func(c config) config {
		c.tinyMin = v
		return c
	}
}

// WithMixedPenalty sets the score awarded for answering mixed on a hand
// that is not meaningfully mixed.
func WithMixedPenalty(v float64) option {
	return func(c config) config {
		c.mixedPenalty = v
		return c
	}
}

type ranked struct {
	action strategy.Action
	p      float64
}

// normalize keeps strictly positive finite weights and scales them to sum
// to 1. Negative, zero, NaN and Inf entries are treated as absent, which is
// the documented policy for malformed chart data. An all-dropped
// distribution comes back empty rather than erroring.
func normalize(dist map[strategy.Action]float64) map[strategy.Action]float64 {
	sum := 0.0
	for _, w := range dist {
		if w > 0 && !math.IsInf(w, 1) && !math.IsNaN(w) {
			sum += w
		}
	}
	norm := make(map[strategy.Action]float64, len(dist))
	if sum == 0 {
		return norm
	}
	for a, w := range dist {
		if w > 0 && !math.IsInf(w, 1) && !math.IsNaN(w) {
			norm[a] = w / sum
		}
	}
	return norm
}

// rank orders the normalized distribution by descending probability, exact
// ties broken by strategy.Order so results are deterministic.
func rank(norm map[strategy.Action]float64) []ranked {
	priority := func(a strategy.Action) int {
		for i, o := range strategy.Order {
			if o == a {
				return i
			}
		}
		return len(strategy.Order)
	}
	rs := make([]ranked, 0, len(norm))
	for a, p := range norm {
		rs = append(rs, ranked{action: a, p: p})
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].p != rs[j].p {
			return rs[i].p > rs[j].p
		}
		return priority(rs[i].action) < priority(rs[j].action)
	})
	return rs
}

// ScoreChoice grades one declared action against a reference distribution.
//
// The distribution is re-normalized first, so {raise:160, fold:40} and
// {raise:0.8, fold:0.2} grade identically. Full credit goes to picking the
// top action of a lopsided spot or calling a genuinely mixed spot mixed;
// genuinely close spots give 0.75 either way; claiming mixed on a near-pure
// spot, or an action the solver never takes, is a miss. It never fails:
// malformed distributions degrade to zero-score results.
func ScoreChoice(dist map[strategy.Action]float64, choice Choice, opts ...option) ScoreResult {
	cfg := defaultConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	norm := normalize(dist)
	rs := rank(norm)

	var top, second ranked
	if len(rs) > 0 {
		top = rs[0]
	}
	if len(rs) > 1 {
		second = rs[1]
	}
	meaningfullyMixed := second.p >= cfg.mixMin

	if choice == ChoiceMixed {
		if meaningfullyMixed {
			return ScoreResult{
				Score:   1.0,
				Bucket:  BucketPerfect,
				Explain: explain(top, second, choice, "a real mixed spot"),
			}
		}
		return ScoreResult{
			Score:   cfg.mixedPenalty,
			Bucket:  BucketMiss,
			Explain: explain(top, second, choice, "not meaningfully mixed"),
		}
	}

	pUser := norm[strategy.Action(choice)]
	if pUser == 0 {
		return ScoreResult{
			Score:   0.0,
			Bucket:  BucketMiss,
			Explain: explain(top, second, choice, "never played here"),
		}
	}

	if strategy.Action(choice) == top.action {
		switch {
		case top.p >= cfg.strong:
			return ScoreResult{
				Score:   1.0,
				Bucket:  BucketPerfect,
				Explain: explain(top, second, choice, "the clear top action"),
			}
		case top.p >= cfg.moderate:
			return ScoreResult{
				Score:   0.9,
				Bucket:  BucketGood,
				Explain: explain(top, second, choice, "the favorite in a leaning spot"),
			}
		default:
			return ScoreResult{
				Score:   0.75,
				Bucket:  BucketPartial,
				Explain: explain(top, second, choice, "one side of a close spot"),
			}
		}
	}

	var score float64
	var why string
	switch {
	case top.p >= cfg.strong:
		score, why = 0.25, "a minority action in a near-pure spot"
	case top.p >= cfg.moderate:
		score, why = 0.5, "the minority side of a leaning spot"
	default:
		score, why = 0.75, "one side of a close spot"
	}
	if pUser < cfg.tinyMin {
		score = math.Min(score, 0.25)
		why = "a rarely-used action"
	}
	return ScoreResult{
		Score:   score,
		Bucket:  BucketPartial,
		Explain: explain(top, second, choice, why),
	}
}

func explain(top, second ranked, choice Choice, why string) string {
	solver := "solver plays nothing here"
	if top.action != "" {
		solver = fmt.Sprintf("solver plays %s %.0f%%", top.action, top.p*100)
		if second.action != "" {
			solver += fmt.Sprintf(", %s %.0f%%", second.action, second.p*100)
		}
	}
	return fmt.Sprintf("%s; answered %s: %s", solver, choice, why)
}
