// Package render turns counted results into the program output.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/and161185/textstat/model"
)

// TotalLabel names the aggregate row appended after multiple inputs.
const TotalLabel = "total"

// Reports projects results through the filter into output reports, in input
// order. When more than one input was counted an aggregate report labeled
// "total" is appended.
func Reports(results []model.Result, total model.Stats, f model.Filter) []model.Report {
	reps := make([]model.Report, 0, len(results)+1)
	for _, r := range results {
		reps = append(reps, model.NewReport(r.Label, r.Stats, f))
	}

	if len(results) > 1 {
		reps = append(reps, model.NewReport(TotalLabel, total, f))
	}

	return reps
}

// Text renders one report as a plain line: either all three counters or the
// single selected one, followed by the input label.
func Text(rep model.Report) string {
	if rep.Lines != nil && rep.Words != nil && rep.Chars != nil {
		return fmt.Sprintf("%d %d %d %s", *rep.Lines, *rep.Words, *rep.Chars, rep.File)
	}

	switch {
	case rep.Lines != nil:
		return fmt.Sprintf("%d %s", *rep.Lines, rep.File)
	case rep.Words != nil:
		return fmt.Sprintf("%d %s", *rep.Words, rep.File)
	case rep.Chars != nil:
		return fmt.Sprintf("%d %s", *rep.Chars, rep.File)
	}

	return rep.File
}

// JSON renders all reports as one compact JSON array.
func JSON(reps []model.Report) (string, error) {
	if reps == nil {
		reps = []model.Report{} // пустой массив, не null
	}

	data, err := json.Marshal(reps)
	if err != nil {
		return "", fmt.Errorf("marshaling reports: %w", err)
	}

	return string(data), nil
}
