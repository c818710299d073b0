package registry

import "github.com/luca-patrignani/range-trainer/domain/strategy"

// Built-in reference charts for 100bb 6-max cash, plus a short-stack shove
// chart. Weights are painted to the usual 0-100 convention; the grading
// layer normalizes, so mildly off-sum blends are fine.
//
// Natural delta pairs: the open charts against each other (what widens as
// position improves), and "Button open" against "Button vs small blind
// 3-bet" (which opens continue against a 3-bet).

const (
	// Chart names, also the menu order below.
	UTGOpen          = "UTG open"
	CutoffOpen       = "Cutoff open"
	ButtonOpen       = "Button open"
	SmallBlindOpen   = "Small blind open"
	BigBlindDefend   = "Big blind defend vs button open"
	ButtonVsThreeBet = "Button vs small blind 3-bet"
	ShortStackShove  = "Small blind 20bb shove"
)

var names = []string{
	UTGOpen,
	CutoffOpen,
	ButtonOpen,
	SmallBlindOpen,
	BigBlindDefend,
	ButtonVsThreeBet,
	ShortStackShove,
}

var fold = strategy.Pure(strategy.ActionFold)

var charts = map[string]strategy.Range{
	UTGOpen:          utgOpen,
	CutoffOpen:       cutoffOpen,
	ButtonOpen:       buttonOpen,
	SmallBlindOpen:   smallBlindOpen,
	BigBlindDefend:   bigBlindDefend,
	ButtonVsThreeBet: buttonVsThreeBet,
	ShortStackShove:  shortStackShove,
}

var utgOpen = newChart(fold).
	pure(strategy.ActionRaise,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77",
		"AKs", "AQs", "AJs", "ATs", "A5s",
		"KQs", "KJs", "KTs",
		"QJs", "QTs", "JTs", "T9s", "98s",
		"AKo", "AQo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 50, strategy.ActionFold: 50},
		"66", "55", "A9s", "A4s", "A3s", "KQo", "AJo", "87s", "76s").
	blend(map[strategy.Action]int{strategy.ActionRaise: 25, strategy.ActionFold: 75},
		"44", "T8s", "J9s", "65s").
	done()

var cutoffOpen = newChart(fold).
	pure(strategy.ActionRaise,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s",
		"QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "98s", "87s", "76s", "65s",
		"AKo", "AQo", "AJo", "ATo", "KQo", "KJo", "QJo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 50, strategy.ActionFold: 50},
		"44", "33", "A7s", "A6s", "K8s", "T8s", "97s", "54s", "A9o", "KTo", "QTo", "JTo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 25, strategy.ActionFold: 75},
		"22", "86s", "75s", "Q8s", "J8s").
	done()

var buttonOpen = newChart(fold).
	pure(strategy.ActionRaise,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
		"QJs", "QTs", "Q9s", "Q8s", "JTs", "J9s", "J8s",
		"T9s", "T8s", "98s", "97s", "87s", "86s", "76s", "75s", "65s", "54s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o",
		"KQo", "KJo", "KTo", "K9o", "QJo", "QTo", "JTo", "T9o").
	blend(map[strategy.Action]int{strategy.ActionRaise: 60, strategy.ActionFold: 40},
		"K4s", "K3s", "K2s", "Q7s", "Q6s", "J7s", "96s", "64s", "53s",
		"A6o", "A5o", "K8o", "Q9o", "J9o", "98o").
	blend(map[strategy.Action]int{strategy.ActionRaise: 30, strategy.ActionFold: 70},
		"Q5s", "Q4s", "T7s", "85s", "74s", "43s", "A4o", "A3o", "K7o", "T8o", "87o").
	done()

var smallBlindOpen = newChart(fold).
	pure(strategy.ActionRaise,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A5s", "A4s",
		"KQs", "KJs", "KTs", "K9s", "QJs", "QTs", "JTs", "T9s", "98s", "87s", "76s",
		"AKo", "AQo", "AJo", "ATo", "KQo", "KJo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 55, strategy.ActionFold: 45},
		"44", "33", "22", "A7s", "A6s", "A3s", "A2s", "K8s", "Q9s", "J9s", "T8s",
		"97s", "65s", "54s", "A9o", "A8o", "KTo", "QJo", "QTo", "JTo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 30, strategy.ActionFold: 70},
		"K7s", "K6s", "K5s", "Q8s", "J8s", "86s", "75s", "A5o", "K9o", "T9o", "98o").
	done()

var bigBlindDefend = newChart(fold).
	pure(strategy.ActionRaise,
		"AA", "KK", "QQ", "AKs", "AKo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 60, strategy.ActionCall: 40},
		"JJ", "TT", "AQs", "A5s", "A4s", "KQs", "AQo").
	blend(map[strategy.Action]int{strategy.ActionRaise: 30, strategy.ActionCall: 70},
		"99", "88", "AJs", "ATs", "KJs", "QJs", "JTs", "T9s", "98s", "87s", "AJo", "KQo").
	pure(strategy.ActionCall,
		"77", "66", "55", "44", "33", "22",
		"A9s", "A8s", "A7s", "A6s", "A3s", "A2s",
		"KTs", "K9s", "K8s", "K7s", "K6s", "K5s", "K4s", "K3s", "K2s",
		"QTs", "Q9s", "Q8s", "Q7s", "Q6s", "Q5s", "Q4s", "Q3s", "Q2s",
		"J9s", "J8s", "J7s", "J6s", "J5s", "T8s", "T7s", "T6s",
		"97s", "96s", "86s", "85s", "76s", "75s", "65s", "64s", "54s", "53s", "43s",
		"ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o",
		"KJo", "KTo", "K9o", "QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "98o", "87o", "76o").
	blend(map[strategy.Action]int{strategy.ActionCall: 50, strategy.ActionFold: 50},
		"J4s", "J3s", "T5s", "T4s", "95s", "84s", "74s", "63s", "52s", "42s", "32s",
		"A3o", "K8o", "Q8o", "J8o", "T8o", "97o", "86o", "65o", "54o").
	done()

// buttonVsThreeBet covers only hands inside the button opening range; the
// rest stay black since hero never arrives here with them.
var buttonVsThreeBet = newChart(strategy.Pure(strategy.ActionBlack)).
	pure(strategy.ActionShove,
		"AA", "KK", "A5s", "A4s").
	blend(map[strategy.Action]int{strategy.ActionShove: 55, strategy.ActionCall: 45},
		"QQ", "AKs", "AKo").
	blend(map[strategy.Action]int{strategy.ActionCall: 70, strategy.ActionShove: 30},
		"JJ", "TT", "AQs").
	pure(strategy.ActionCall,
		"99", "88", "77", "66", "55",
		"AJs", "ATs", "A9s", "KQs", "KJs", "KTs", "QJs", "QTs", "JTs",
		"T9s", "98s", "87s", "76s", "65s", "AQo", "AJo", "KQo").
	blend(map[strategy.Action]int{strategy.ActionCall: 40, strategy.ActionFold: 60},
		"44", "33", "22", "A8s", "A7s", "K9s", "Q9s", "J9s", "T8s", "97s", "54s", "ATo", "KJo").
	pure(strategy.ActionFold,
		"A6s", "A3s", "A2s", "K8s", "K7s", "K6s", "K5s", "Q8s", "J8s",
		"86s", "75s", "A9o", "A8o", "A7o", "KTo", "K9o", "QJo", "QTo", "JTo", "T9o").
	done()

// shortStackShove is a 20bb small-blind push/fold chart: no raise sizing
// exists at that depth, every continue is a jam.
var shortStackShove = newChart(fold).
	pure(strategy.ActionShove,
		"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
		"QJs", "QTs", "Q9s", "Q8s", "JTs", "J9s", "T9s", "98s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o",
		"KQo", "KJo", "KTo", "QJo", "QTo", "JTo").
	blend(map[strategy.Action]int{strategy.ActionShove: 50, strategy.ActionFold: 50},
		"K4s", "K3s", "K2s", "Q7s", "J8s", "T8s", "87s", "97s", "76s",
		"A4o", "A3o", "A2o", "K9o", "Q9o", "J9o", "T9o").
	done()
