// Package model contains core data types for the project.
package model

import "github.com/and161185/textstat/internal/utils"

// Filter selects which counters appear in the output: all of them or one.
type Filter string

const (
	FilterAll   Filter = "all"   // FilterAll keeps lines, words and chars.
	FilterLines Filter = "lines" // FilterLines keeps the line count only.
	FilterWords Filter = "words" // FilterWords keeps the word count only.
	FilterChars Filter = "chars" // FilterChars keeps the char count only.
)

// Format defines the output encoding: plain text or JSON.
type Format string

const (
	FormatText Format = "text" // FormatText prints one plain line per input.
	FormatJSON Format = "json" // FormatJSON prints a single JSON array.
)

// Stats holds the three counters for one piece of text.
type Stats struct {
	Lines int64 // Number of lines.
	Words int64 // Number of whitespace-separated words.
	Chars int64 // Number of Unicode characters (runes), not bytes.
}

// Add returns the elementwise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Lines: s.Lines + other.Lines,
		Words: s.Words + other.Words,
		Chars: s.Chars + other.Chars,
	}
}

// Result pairs counted stats with the label of the input they came from.
type Result struct {
	Label string
	Stats Stats
}

// Report is the output shape for a single input. Counters dropped by the
// filter stay nil and are omitted from JSON; a zero count is still reported.
type Report struct {
	File  string `json:"file"`            // Input label: the path as given, or "-" for stdin.
	Lines *int64 `json:"lines,omitempty"` // Line count, nil when filtered out.
	Words *int64 `json:"words,omitempty"` // Word count, nil when filtered out.
	Chars *int64 `json:"chars,omitempty"` // Char count, nil when filtered out.
}

// NewReport projects stats through the filter into a Report for the given label.
func NewReport(label string, s Stats, f Filter) Report {
	rep := Report{File: label}

	switch f {
	case FilterLines:
		rep.Lines = utils.I64Ptr(s.Lines)
	case FilterWords:
		rep.Words = utils.I64Ptr(s.Words)
	case FilterChars:
		rep.Chars = utils.I64Ptr(s.Chars)
	default:
		rep.Lines = utils.I64Ptr(s.Lines)
		rep.Words = utils.I64Ptr(s.Words)
		rep.Chars = utils.I64Ptr(s.Chars)
	}

	return rep
}
