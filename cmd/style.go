package main

import (
	"sort"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/range-trainer/domain/strategy"
	"github.com/luca-patrignani/range-trainer/grading"
)

func printSummary(title string, s grading.Summary) {
	pterm.Println()
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	resultString := pterm.Sprintfln("Accuracy: %s", colorAccuracy(s.Accuracy))
	resultString += pterm.Sprintfln("Attempted %d, unanswered %d", s.Attempted, s.Unanswered)
	resultString += pterm.Sprintfln("%s perfect, %s good, %s partial, %s miss",
		pterm.LightGreen(s.Buckets[grading.BucketPerfect]),
		pterm.Green(s.Buckets[grading.BucketGood]),
		pterm.Yellow(s.Buckets[grading.BucketPartial]),
		pterm.LightRed(s.Buckets[grading.BucketMiss]))
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|" + title + "|")).WithTitleTopCenter().Sprint(resultString))

	printBreakdown(s)
	printMisses(s)
}

func colorAccuracy(accuracy float64) string {
	text := pterm.Sprintf("%.1f%%", accuracy*100)
	switch {
	case accuracy >= 0.9:
		return pterm.LightGreen(text)
	case accuracy >= 0.7:
		return pterm.Yellow(text)
	default:
		return pterm.LightRed(text)
	}
}

func printBreakdown(s grading.Summary) {
	data := pterm.TableData{{"action", "expected", "correct", "half credit", "accuracy"}}
	actions := append(strategy.Order[:], strategy.ActionBlack)
	for _, action := range actions {
		b := s.ByAction[action]
		if b == nil || b.Expected == 0 {
			continue
		}
		if action == strategy.ActionBlack {
			data = append(data, []string{string(action), pterm.Sprintf("%d", b.Expected), "-", "-", "-"})
			continue
		}
		data = append(data, []string{
			string(action),
			pterm.Sprintf("%d", b.Expected),
			pterm.Sprintf("%d", b.Correct),
			pterm.Sprintf("%d", b.HalfCredit),
			pterm.Sprintf("%.1f%%", b.Accuracy*100),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func printMisses(s grading.Summary) {
	var missed []string
	for hand, res := range s.Results {
		if res.Bucket == grading.BucketMiss {
			missed = append(missed, hand)
		}
	}
	if len(missed) == 0 {
		pterm.Success.Println("No outright misses, nice.")
		return
	}
	sort.Strings(missed)

	pterm.Println()
	pterm.Warning.Printfln("%d hands to review:", len(missed))
	for _, hand := range missed {
		pterm.Printfln("  %s — %s", pterm.LightCyan(hand), s.Results[hand].Explain)
	}
}
