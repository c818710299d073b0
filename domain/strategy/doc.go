// Package strategy models the reference preflop strategy a trainee is
// graded against.
//
// # Core Types
//
// Action: A preflop decision (raise, call, fold, shove) plus the black
// sentinel marking hands outside hero's range.
//
// HandAction: The solver's answer for one hand, either a pure action or a
// blend of actions with relative 0-100 weights.
//
// Range: A chart mapping the 169 canonical hand notations to HandActions.
//
// # Blends
//
// A blend keeps only its positive components, so {raise:100, fold:0} and
// {raise:100} are the same value. The dominant component is resolved with
// the fixed priority raise > call > fold > shove on exact ties, and the
// blend signature ("raise-fold") lists the present components in that same
// order. Weights are relative: Distribution divides by 100 but the grading
// layer re-normalizes, so charts painted to 98% or 105% still grade
// correctly.
package strategy
