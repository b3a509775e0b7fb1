package scoring

import "testing"

func TestCorrectionRule_Applies(t *testing.T) {
	r := CorrectionRule{Trigger: "D", TriggerMin: 95, Guard: "E", GuardMax: 50, Penalty: -3}

	tests := []struct {
		name   string
		scores CategoryScores
		want   bool
	}{
		{"both thresholds met", CategoryScores{"D": 95, "E": 50}, true},
		{"trigger above, guard below", CategoryScores{"D": 100, "E": 0}, true},
		{"trigger too low", CategoryScores{"D": 94.9, "E": 50}, false},
		{"guard too high", CategoryScores{"D": 95, "E": 50.1}, false},
		{"missing categories", CategoryScores{}, false},
	}
	for _, tt := range tests {
		if got := r.Applies(tt.scores); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCorrectionFor_Cumulative(t *testing.T) {
	scores := CategoryScores{"A": 40, "B": 96, "D": 97, "E": 30}
	got := CorrectionFor(scores, DefaultCorrectionRules())
	if got != -6 {
		t.Errorf("got %d, want -6", got)
	}
}

func TestCorrectionFor_NoMatch(t *testing.T) {
	scores := CategoryScores{"A": 80, "B": 80, "D": 80, "E": 80}
	got := CorrectionFor(scores, DefaultCorrectionRules())
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestDefaultCorrectionRules_Count(t *testing.T) {
	rules := DefaultCorrectionRules()
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	for _, r := range rules {
		if r.Penalty != -3 {
			t.Errorf("rule %q: got penalty %d, want -3", r.Name, r.Penalty)
		}
	}
}
