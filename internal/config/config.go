// Package config provides application configuration structures and helpers.
package config

import (
	"fmt"
	"io"

	"github.com/and161185/textstat/internal/buildinfo"
	"github.com/and161185/textstat/internal/input"
	"github.com/and161185/textstat/model"
	"github.com/napalu/goopt/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stdinMarker replaces a bare "-" before parsing: goopt lexes "-" as an empty
// flag. NUL never survives exec, so the marker cannot collide with real paths.
const stdinMarker = "\x00-"

// Options holds the parsed command-line settings for one run.
type Options struct {
	Lines   bool `goopt:"short:l;desc:print only the line count"`
	Words   bool `goopt:"short:w;desc:print only the word count (lines wins when both are set)"`
	Chars   bool `goopt:"short:c;desc:print only the character count (lines and words win)"`
	JSON    bool `goopt:"name:json;short:j;desc:print results as a JSON array"`
	Verbose bool `goopt:"short:v;desc:verbose diagnostics on stderr"`

	Files  []string           `ignore:"true"` // positional arguments in order, "-" means stdin
	Logger *zap.SugaredLogger `ignore:"true"`
}

// Filter returns the metric filter the flags select. With several metric
// flags set the first of lines, words, chars wins.
func (o *Options) Filter() model.Filter {
	switch {
	case o.Lines:
		return model.FilterLines
	case o.Words:
		return model.FilterWords
	case o.Chars:
		return model.FilterChars
	}
	return model.FilterAll
}

// Format returns the output format the flags select.
func (o *Options) Format() model.Format {
	if o.JSON {
		return model.FormatJSON
	}
	return model.FormatText
}

// NewOptions parses args (program name excluded) into Options. The done
// result is true when help or version output was printed and the caller
// should exit cleanly. Parse errors are reported to stderr together with
// usage and returned combined.
func NewOptions(args []string, stdout, stderr io.Writer) (*Options, bool, error) {
	opts := &Options{}

	parser, err := goopt.NewParserFromStruct(opts,
		goopt.WithVersionFunc(buildinfo.String),
		goopt.WithVersionFlags("version"), // короткий -v занят verbose
	)
	if err != nil {
		return nil, false, fmt.Errorf("building parser: %w", err)
	}

	parser.SetStdout(stdout)
	parser.SetStderr(stderr)
	parser.SetAutoLanguage(false) // auto flags claim -l
	parser.SetEndHelpFunc(func() error { return nil })

	masked := make([]string, len(args))
	for i, a := range args {
		if a == input.StdinLabel {
			masked[i] = stdinMarker
			continue
		}
		masked[i] = a
	}

	ok := parser.Parse(masked)
	if parser.WasHelpShown() || parser.WasVersionShown() {
		return opts, true, nil
	}
	if !ok {
		for _, perr := range parser.GetErrors() {
			fmt.Fprintf(stderr, "textstat: %v\n", perr)
		}
		parser.PrintUsage(stderr)
		return nil, false, multierr.Combine(parser.GetErrors()...)
	}

	for _, pos := range parser.GetPositionalArgs() {
		val := pos.Value
		if val == stdinMarker {
			val = input.StdinLabel
		}
		opts.Files = append(opts.Files, val)
	}

	opts.Logger = newLogger(opts.Verbose)

	return opts, false, nil
}

func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.OutputPaths = []string{"stderr"}

	return zap.Must(logCfg.Build()).Sugar()
}
