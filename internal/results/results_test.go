package results

import (
	"testing"

	"github.com/and161185/textstat/model"
)

func TestAccumulator_AddKeepsOrder(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("a.txt", model.Stats{Lines: 1, Words: 2, Chars: 3})
	acc.Add("b.txt", model.Stats{Lines: 10, Words: 20, Chars: 30})

	res := acc.Results()
	if len(res) != 2 {
		t.Fatalf("want 2 results, got %d", len(res))
	}
	if res[0].Label != "a.txt" || res[1].Label != "b.txt" {
		t.Errorf("order lost: %+v", res)
	}
}

func TestAccumulator_Total(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("a", model.Stats{Lines: 1, Words: 2, Chars: 3})
	acc.Add("b", model.Stats{Lines: 4, Words: 5, Chars: 6})

	want := model.Stats{Lines: 5, Words: 7, Chars: 9}
	if got := acc.Total(); got != want {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestAccumulator_SameLabelTwice(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("-", model.Stats{Lines: 1, Words: 1, Chars: 2})
	acc.Add("-", model.Stats{Lines: 3, Words: 4, Chars: 5})

	if acc.Len() != 2 {
		t.Fatalf("duplicate labels must stay separate rows, got %d", acc.Len())
	}
	want := model.Stats{Lines: 4, Words: 5, Chars: 7}
	if got := acc.Total(); got != want {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestAccumulator_Empty(t *testing.T) {
	acc := NewAccumulator()
	if acc.Len() != 0 {
		t.Errorf("want empty, got %d", acc.Len())
	}
	if got := acc.Total(); got != (model.Stats{}) {
		t.Errorf("zero total expected, got %+v", got)
	}
}
