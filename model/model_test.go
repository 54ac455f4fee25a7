package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats_Add(t *testing.T) {
	a := Stats{Lines: 1, Words: 2, Chars: 3}
	b := Stats{Lines: 10, Words: 20, Chars: 30}

	require.Equal(t, Stats{Lines: 11, Words: 22, Chars: 33}, a.Add(b))
	require.Equal(t, Stats{Lines: 1, Words: 2, Chars: 3}, a, "receiver must stay unchanged")
}

func TestNewReport_Filters(t *testing.T) {
	s := Stats{Lines: 3, Words: 10, Chars: 42}

	tests := []struct {
		name   string
		filter Filter
		lines  bool
		words  bool
		chars  bool
	}{
		{"all", FilterAll, true, true, true},
		{"lines", FilterLines, true, false, false},
		{"words", FilterWords, false, true, false},
		{"chars", FilterChars, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := NewReport("a.txt", s, tc.filter)
			require.Equal(t, "a.txt", rep.File)
			require.Equal(t, tc.lines, rep.Lines != nil)
			require.Equal(t, tc.words, rep.Words != nil)
			require.Equal(t, tc.chars, rep.Chars != nil)
		})
	}
}

func TestReport_JSONShape(t *testing.T) {
	rep := NewReport("-", Stats{Words: 3}, FilterWords)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	require.JSONEq(t, `{"file":"-","words":3}`, string(data))
}

func TestReport_JSONZeroKept(t *testing.T) {
	rep := NewReport("empty.txt", Stats{}, FilterAll)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	require.JSONEq(t, `{"file":"empty.txt","lines":0,"words":0,"chars":0}`, string(data))
}
