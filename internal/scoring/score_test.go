package scoring

import (
	"reflect"
	"testing"

	"github.com/sgslabs/sgsdiag/internal/catalog"
)

func TestEffectiveScore_Normal(t *testing.T) {
	q := catalog.Question{ID: "x1", Category: "A"}
	for raw := 0; raw <= catalog.RawScoreMax; raw++ {
		got, err := EffectiveScore(q, raw)
		if err != nil {
			t.Fatalf("raw %d: unexpected error: %v", raw, err)
		}
		if got != raw {
			t.Errorf("raw %d: got %d, want %d", raw, got, raw)
		}
	}
}

func TestEffectiveScore_Reverse(t *testing.T) {
	q := catalog.Question{ID: "x1", Category: "A", Reverse: true}
	tests := []struct{ raw, want int }{
		{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0},
	}
	for _, tt := range tests {
		got, err := EffectiveScore(q, tt.raw)
		if err != nil {
			t.Fatalf("raw %d: unexpected error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("raw %d: got %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestEffectiveScore_OutOfRange(t *testing.T) {
	q := catalog.Question{ID: "x1", Category: "A"}
	for _, raw := range []int{-1, 5, 100} {
		if _, err := EffectiveScore(q, raw); err == nil {
			t.Errorf("raw %d: expected error, got nil", raw)
		}
	}
}

func TestScoreCategories_AllMax(t *testing.T) {
	answers := make(map[string]int)
	for _, q := range catalog.Questions() {
		answers[q.ID] = catalog.RawScoreMax
	}
	scores := ScoreCategories(answers)
	for _, cat := range catalog.Categories() {
		if scores[cat.ID] != 100 {
			t.Errorf("category %q: got %v, want 100", cat.ID, scores[cat.ID])
		}
	}
}

func TestScoreCategories_NoAnswers(t *testing.T) {
	scores := ScoreCategories(map[string]int{})
	if len(scores) != 0 {
		t.Errorf("empty answer set: got %v, want no scores", scores)
	}
}

func TestScoreCategories_AllZeroAnswers(t *testing.T) {
	// Answering every question with raw 0 is a real (if bleak) result and
	// must stay distinguishable from not answering at all.
	answers := make(map[string]int)
	for _, q := range catalog.Questions() {
		answers[q.ID] = 0
	}
	scores := ScoreCategories(answers)
	for _, cat := range catalog.Categories() {
		if scores[cat.ID] != 0 {
			t.Errorf("category %q: got %v, want 0", cat.ID, scores[cat.ID])
		}
	}
	if _, ok := Composite(scores); !ok {
		t.Error("answered set should have a defined composite")
	}
}

func TestScoreCategories_SingleCategory(t *testing.T) {
	// All eight A questions answered with 2 of 4: (16/32)*100 = 50.
	answers := make(map[string]int)
	for _, q := range catalog.QuestionsFor("A") {
		answers[q.ID] = 2
	}
	scores := ScoreCategories(answers)
	if scores["A"] != 50 {
		t.Errorf("category A: got %v, want 50", scores["A"])
	}
	if scores["B"] != 0 {
		t.Errorf("category B: got %v, want 0", scores["B"])
	}
}

func TestScoreCategories_Idempotent(t *testing.T) {
	answers := map[string]int{"a1": 3, "b2": 1, "c5": 4}
	first := ScoreCategories(answers)
	second := ScoreCategories(answers)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring differs: %v vs %v", first, second)
	}
}

func TestComposite_WeightedAverage(t *testing.T) {
	// (100*20+40*20+70*15+96*20+45*15+80*10)/100 = 72.45 → 72,
	// then the metacognition/strategy correction fires: 72-3 = 69.
	scores := CategoryScores{"A": 100, "B": 40, "C": 70, "D": 96, "E": 45, "F": 80}
	got, ok := Composite(scores)
	if !ok {
		t.Fatal("expected a valid composite")
	}
	if got != 69 {
		t.Errorf("got %d, want 69", got)
	}
}

func TestComposite_NoCorrection(t *testing.T) {
	scores := CategoryScores{"A": 80, "B": 80, "C": 80, "D": 80, "E": 80, "F": 80}
	got, ok := Composite(scores)
	if !ok {
		t.Fatal("expected a valid composite")
	}
	if got != 80 {
		t.Errorf("got %d, want 80", got)
	}
}

func TestComposite_BothCorrections(t *testing.T) {
	// D≥95 with E≤50 fires, and B≥95 with A≤50 fires: two -3 penalties.
	scores := CategoryScores{"A": 50, "B": 95, "C": 100, "D": 95, "E": 50, "F": 100}
	// (50*20+95*20+100*15+95*20+50*15+100*10)/100 = 80.5 → 81, minus 6 = 75.
	got, ok := Composite(scores)
	if !ok {
		t.Fatal("expected a valid composite")
	}
	if got != 75 {
		t.Errorf("got %d, want 75", got)
	}
}

func TestComposite_ClampsLow(t *testing.T) {
	// All zeros with a correction that would go negative stays at 0.
	scores := CategoryScores{"A": 0, "B": 0, "C": 0, "D": 0, "E": 0, "F": 0}
	got, ok := Composite(scores)
	if !ok {
		t.Fatal("expected a valid composite")
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestComposite_ClampsHigh(t *testing.T) {
	scores := CategoryScores{"A": 100, "B": 100, "C": 100, "D": 100, "E": 100, "F": 100}
	got, ok := Composite(scores)
	if !ok {
		t.Fatal("expected a valid composite")
	}
	if got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestComposite_NoScores(t *testing.T) {
	// No answers means no scores: the composite is undefined, not zero.
	if got, ok := Composite(CategoryScores{}); ok {
		t.Errorf("empty scores: got (%d, true), want ok=false", got)
	}
	if got, ok := Composite(nil); ok {
		t.Errorf("nil scores: got (%d, true), want ok=false", got)
	}
}

func TestReverseEquivalence(t *testing.T) {
	// Raw s on a reverse question contributes the same as raw 4-s on a
	// normal question.
	rev := catalog.Question{ID: "r", Category: "A", Reverse: true}
	norm := catalog.Question{ID: "n", Category: "A"}
	for s := 0; s <= catalog.RawScoreMax; s++ {
		er, err := EffectiveScore(rev, s)
		if err != nil {
			t.Fatal(err)
		}
		en, err := EffectiveScore(norm, catalog.RawScoreMax-s)
		if err != nil {
			t.Fatal(err)
		}
		if er != en {
			t.Errorf("raw %d: reverse gives %d, mirrored normal gives %d", s, er, en)
		}
	}
}
