// Package input resolves command-line arguments into readable text sources.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/and161185/textstat/internal/errs"
)

// StdinLabel is the display name of the standard input source.
const StdinLabel = "-"

// Source is a single input to count: a named file or standard input.
type Source struct {
	Label string // name shown in output and diagnostics
	Path  string // file path; empty or "-" means standard input
}

// Stdin reports whether the source reads from standard input.
func (s Source) Stdin() bool { return s.Path == "" || s.Path == StdinLabel }

// Sources maps positional arguments to sources in order. No arguments means
// a single standard input source.
func Sources(files []string) []Source {
	if len(files) == 0 {
		return []Source{{Label: StdinLabel}}
	}

	out := make([]Source, 0, len(files))
	for _, f := range files {
		out = append(out, Source{Label: f, Path: f})
	}
	return out
}

// Read returns the full text of the source. The content must be valid UTF-8,
// otherwise errs.ErrNotUTF8 is returned. Errors carry the source label.
func (s Source) Read(stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if s.Stdin() {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(s.Path)
	}
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err // PathError repeats the file name
		}
		return "", fmt.Errorf("%s: %w", s.Label, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", s.Label, errs.ErrNotUTF8)
	}

	return string(data), nil
}
