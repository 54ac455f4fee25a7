// Package cli wires parsing, counting and rendering into the program run.
package cli

import (
	"fmt"
	"io"

	"github.com/and161185/textstat/internal/config"
	"github.com/and161185/textstat/internal/counter"
	"github.com/and161185/textstat/internal/input"
	"github.com/and161185/textstat/internal/render"
	"github.com/and161185/textstat/internal/results"
	"github.com/and161185/textstat/model"
	"go.uber.org/multierr"
)

// Exit codes of the textstat binary.
const (
	ExitOK       = 0 // all requested inputs were counted
	ExitReadFail = 1 // at least one input could not be read
	ExitBadArgs  = 2 // the command line did not parse
)

// Run executes one invocation: args is the command line without the program
// name, the writers receive the program output and diagnostics. It returns
// the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, done, err := config.NewOptions(args, stdout, stderr)
	if done {
		return ExitOK
	}
	if err != nil {
		return ExitBadArgs
	}

	log := opts.Logger
	log.Infof("textstat config: filter=%s, format=%s, inputs=%d",
		opts.Filter(), opts.Format(), len(opts.Files))

	acc := results.NewAccumulator()
	var readErrs error

	for _, src := range input.Sources(opts.Files) {
		text, err := src.Read(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "textstat: %v\n", err)
			readErrs = multierr.Append(readErrs, err)
			continue
		}

		s := counter.Count(text)
		log.Infof("counted %s: lines=%d, words=%d, chars=%d", src.Label, s.Lines, s.Words, s.Chars)
		acc.Add(src.Label, s)
	}

	reps := render.Reports(acc.Results(), acc.Total(), opts.Filter())

	switch opts.Format() {
	case model.FormatJSON:
		out, err := render.JSON(reps)
		if err != nil {
			fmt.Fprintf(stderr, "textstat: %v\n", err)
			return ExitReadFail
		}
		fmt.Fprintln(stdout, out)
	default:
		for _, rep := range reps {
			fmt.Fprintln(stdout, render.Text(rep))
		}
	}

	if readErrs != nil {
		log.Errorf("failed inputs: %d", len(multierr.Errors(readErrs)))
		return ExitReadFail
	}

	return ExitOK
}
