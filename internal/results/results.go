// Package results accumulates per-input counts for one invocation.
package results

import "github.com/and161185/textstat/model"

// Accumulator keeps successfully counted inputs in command-line order and
// a running total. Owned by a single goroutine, not safe for concurrent use.
type Accumulator struct {
	results []model.Result
	total   model.Stats
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (acc *Accumulator) Add(label string, s model.Stats) {
	acc.results = append(acc.results, model.Result{Label: label, Stats: s})
	acc.total = acc.total.Add(s)
}

func (acc *Accumulator) Results() []model.Result {
	return acc.results
}

func (acc *Accumulator) Total() model.Stats {
	return acc.total
}

func (acc *Accumulator) Len() int {
	return len(acc.results)
}
