package registry

import (
	"slices"

	"github.com/luca-patrignani/range-trainer/domain/hands"
	"github.com/luca-patrignani/range-trainer/domain/strategy"
)

// Names returns the built-in chart names in menu order.
func Names() []string {
	return slices.Clone(names)
}

// Lookup returns the chart registered under name. The returned range is a
// copy, so callers can mutate it freely.
func Lookup(name string) (strategy.Range, bool) {
	chart, ok := charts[name]
	if !ok {
		return nil, false
	}
	out := make(strategy.Range, len(chart))
	for hand, action := range chart {
		out[hand] = action
	}
	return out, true
}

type builder struct {
	r strategy.Range
}

// newChart starts a full 169-hand chart with every hand set to fill.
func newChart(fill strategy.HandAction) *builder {
	r := make(strategy.Range, 169)
	for _, n := range hands.Notations() {
		r[n] = fill
	}
	return &builder{r: r}
}

func (b *builder) pure(a strategy.Action, notations ...string) *builder {
	for _, n := range notations {
		b.r[n] = strategy.Pure(a)
	}
	return b
}

func (b *builder) blend(weights map[strategy.Action]int, notations ...string) *builder {
	h := strategy.Blend(weights)
	for _, n := range notations {
		b.r[n] = h
	}
	return b
}

func (b *builder) done() strategy.Range {
	return b.r
}
