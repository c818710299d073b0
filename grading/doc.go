// Package grading scores a trainee's declared preflop actions against a
// reference strategy and aggregates the results.
//
// # Core Functions
//
// ScoreChoice: Grades a single declared action against a probability
// distribution over actions, returning a fractional score, a grade bucket
// (perfect, good, partial, miss) and an explanation.
//
// GradeSubmission: Iterates a reference range, scores every answered hand
// and aggregates per-bucket and per-action tallies into a Summary.
//
// GradeDelta: Grades only the hands whose expected action changed between
// two reference ranges, masking everything else as excluded.
//
// # Scoring Model
//
// The reference distribution is normalized, then classified by the weight
// of its top action: near-pure spots (top >= 0.75) pay full credit only for
// the top action, leaning spots (top >= 0.60) pay 0.9 for the favorite and
// 0.5 for the other side, and close spots pay 0.75 either way since either
// side is a defensible piece of a mixed strategy. Answering "mixed" is
// perfect exactly when the second action carries real weight (>= 0.15) and
// a miss otherwise; picking an action the solver uses less than 10% of the
// time caps the score at 0.25.
//
// # Purity
//
// Everything in this package is a pure function of its inputs: no stored
// state, no I/O, safe to call concurrently. Malformed input never errors,
// it degrades to zero scores and miss buckets.
package grading
