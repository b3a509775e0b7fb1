package catalog

import (
	"testing"
)

func TestGetCategory_Exists(t *testing.T) {
	c, err := GetCategory("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "학습 시간의 질" {
		t.Errorf("got name %q, want %q", c.Name, "학습 시간의 질")
	}
	if c.Weight != 20 {
		t.Errorf("got weight %v, want 20", c.Weight)
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	_, err := GetCategory("Z")
	if err == nil {
		t.Fatal("expected error for nonexistent category, got nil")
	}
}

func TestCategories_Count(t *testing.T) {
	all := Categories()
	if len(all) != 6 {
		t.Errorf("got %d categories, want 6", len(all))
	}
}

func TestCategories_TotalWeight(t *testing.T) {
	total := 0.0
	for _, c := range Categories() {
		total += c.Weight
	}
	if total != 100 {
		t.Errorf("got total weight %v, want 100", total)
	}
}

func TestGetQuestion_Exists(t *testing.T) {
	q, err := GetQuestion("a3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Category != "A" {
		t.Errorf("got category %q, want %q", q.Category, "A")
	}
	if !q.Reverse {
		t.Error("a3 should be reverse-scored")
	}
}

func TestGetQuestion_NotFound(t *testing.T) {
	_, err := GetQuestion("z99")
	if err == nil {
		t.Fatal("expected error for nonexistent question, got nil")
	}
}

func TestQuestions_Count(t *testing.T) {
	if got := QuestionCount(); got != 48 {
		t.Errorf("got %d questions, want 48", got)
	}
}

func TestQuestionsFor(t *testing.T) {
	for _, c := range Categories() {
		qs := QuestionsFor(c.ID)
		if len(qs) != 8 {
			t.Errorf("QuestionsFor(%q): got %d questions, want 8", c.ID, len(qs))
		}
		for _, q := range qs {
			if q.Category != c.ID {
				t.Errorf("question %q filed under category %q", q.ID, c.ID)
			}
		}
	}
}

func TestQuestions_ReverseFlags(t *testing.T) {
	wantReverse := map[string]bool{
		"a3": true, "a6": true,
		"b2": true, "b5": true, "b7": true,
		"c3": true, "c7": true,
		"d7": true,
		"e8": true,
		"f4": true, "f6": true,
	}
	for _, q := range Questions() {
		if q.Reverse != wantReverse[q.ID] {
			t.Errorf("question %q: got Reverse=%v, want %v", q.ID, q.Reverse, wantReverse[q.ID])
		}
	}
}

func TestResolveTier_KnownScores(t *testing.T) {
	tests := []struct {
		pai       int
		wantGrade string
	}{
		{100, "1급"},
		{96, "1급"},
		{95, "2급"},
		{86, "3급"},
		{80, "4급"},
		{76, "5급"},
		{73, "6급"},
		{66, "7급"},
		{60, "8급"},
		{50, "9급"},
		{49, "10급"},
		{0, "10급"},
	}
	for _, tt := range tests {
		tier, ok := ResolveTier(tt.pai)
		if !ok {
			t.Errorf("ResolveTier(%d): got ok=false", tt.pai)
			continue
		}
		if tier.Grade != tt.wantGrade {
			t.Errorf("ResolveTier(%d): got grade %q, want %q", tt.pai, tier.Grade, tt.wantGrade)
		}
	}
}

func TestResolveTier_EveryScoreMatchesExactlyOne(t *testing.T) {
	for pai := 0; pai <= 100; pai++ {
		matches := 0
		for _, tier := range Tiers() {
			if tier.Contains(pai) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("score %d matched %d tiers, want exactly 1", pai, matches)
		}
	}
}

func TestTiers_Count(t *testing.T) {
	if got := len(Tiers()); got != 10 {
		t.Errorf("got %d tiers, want 10", got)
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	a := Questions()
	a[0].Text = "MUTATED"
	b := Questions()
	if b[0].Text == "MUTATED" {
		t.Error("Questions did not return a defensive copy")
	}
}
