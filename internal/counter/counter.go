// Package counter computes line, word and character statistics for text.
package counter

import (
	"strings"
	"unicode/utf8"

	"github.com/and161185/textstat/model"
)

// Count returns the statistics for the given text.
//
// Lines are newline-terminated; a non-empty final line without a trailing
// newline still counts. Words are maximal runs of non-whitespace separated
// by Unicode whitespace. Chars are Unicode code points, not bytes.
func Count(text string) model.Stats {
	lines := int64(strings.Count(text, "\n"))
	if text != "" && !strings.HasSuffix(text, "\n") {
		lines++
	}

	return model.Stats{
		Lines: lines,
		Words: int64(len(strings.Fields(text))),
		Chars: int64(utf8.RuneCountInString(text)),
	}
}
