package strategy

// Action è l'azione preflop che la strategia di riferimento assegna a una mano
type Action string

const (
	ActionRaise Action = "raise"
	ActionCall  Action = "call"
	ActionFold  Action = "fold"
	ActionShove Action = "shove"

	// ActionBlack marks a hand that is not part of hero's range.
	// It is a sentinel, not a playable action: black hands are never
	// graded and never carry probability mass.
	ActionBlack Action = "black"
)

// Order is the fixed priority used for tie-breaks and for ordering the
// components of a mixed strategy.
var Order = [4]Action{ActionRaise, ActionCall, ActionFold, ActionShove}

// Range maps canonical hand notation ("AA", "AKs", "T9o") to the expected
// action for that hand. A full preflop chart has 169 entries.
type Range map[string]HandAction
