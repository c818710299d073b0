package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/range-trainer/domain/hands"
	"github.com/luca-patrignani/range-trainer/domain/strategy"
	"github.com/luca-patrignani/range-trainer/grading"
	"github.com/luca-patrignani/range-trainer/registry"
)

const (
	modeRange = "range drill: one chart, every hand"
	modeDelta = "delta drill: only what changed between two charts"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ange ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("rainer", pterm.FgDarkGray.ToStyle()),
	).Render()

	mode, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{modeRange, modeDelta}).
		Show("Pick a drill")
	pterm.Println()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	switch mode {
	case modeDelta:
		runDeltaDrill(logger, rng)
	default:
		runRangeDrill(logger, rng)
	}
}

func pickChart(prompt string) (string, strategy.Range) {
	name, _ := pterm.DefaultInteractiveSelect.
		WithOptions(registry.Names()).
		WithMaxHeight(len(registry.Names())).
		Show(prompt)
	chart, ok := registry.Lookup(name)
	if !ok {
		pterm.Error.Printfln("unknown chart %s", name)
		os.Exit(1)
	}
	return name, chart
}

func runRangeDrill(logger *slog.Logger, rng *rand.Rand) {
	name, chart := pickChart("Which chart do you want to drill?")
	logger.Info("starting range drill", "chart", name)

	drill := make([]string, 0, len(chart))
	for _, hand := range hands.Shuffled(rng) {
		if !chart[hand].IsBlack() {
			drill = append(drill, hand)
		}
	}

	answers := askHands(drill)
	summary := grading.GradeSubmission(chart, answers)
	printSummary(name, summary)
}

func runDeltaDrill(logger *slog.Logger, rng *rand.Rand) {
	startName, start := pickChart("Start chart (what you already know)")
	targetName, target := pickChart("Target chart (what you are learning)")

	changed := grading.DiffHands(start, target)
	if len(changed) == 0 {
		pterm.Info.Println("Those two charts agree on every hand, nothing to drill.")
		return
	}
	logger.Info("starting delta drill", "start", startName, "target", targetName, "changed", len(changed))
	pterm.Info.Printfln("%d hands changed between %s and %s", len(changed), startName, targetName)
	pterm.Println()

	isChanged := make(map[string]bool, len(changed))
	for _, hand := range changed {
		isChanged[hand] = true
	}
	drill := make([]string, 0, len(changed))
	for _, hand := range hands.Shuffled(rng) {
		if isChanged[hand] {
			drill = append(drill, hand)
		}
	}

	answers := askHands(drill)
	summary := grading.GradeDelta(start, target, answers)
	printSummary(targetName+" (delta)", summary)
}

// askHands prompts for an answer per hand. Skipped hands stay out of the
// answers map so the grader counts them as unanswered; quitting grades
// whatever has been answered so far.
func askHands(drill []string) map[string]string {
	options := []string{
		string(strategy.ActionRaise),
		string(strategy.ActionCall),
		string(strategy.ActionFold),
		string(strategy.ActionShove),
		string(grading.ChoiceMixed),
		"skip",
		"quit and grade",
	}

	answers := make(map[string]string, len(drill))
	for i, hand := range drill {
		prompt := fmt.Sprintf("[%d/%d] %s (%d combos)", i+1, len(drill), pterm.LightCyan(hand), hands.ComboCount(hand))
		answer, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithMaxHeight(len(options)).
			Show(prompt)
		if answer == "quit and grade" {
			break
		}
		if answer == "skip" || answer == "" {
			continue
		}
		answers[hand] = answer
	}
	return answers
}
