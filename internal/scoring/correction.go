package scoring

// CorrectionRule penalizes a profile where one very high category score is
// undermined by a very low one, a pattern that tends to overstate the
// composite. Trigger is the high category, Guard the low one.
type CorrectionRule struct {
	Name       string
	Trigger    string
	TriggerMin float64
	Guard      string
	GuardMax   float64
	Penalty    int
}

// Applies reports whether the rule fires for the given category scores.
func (r CorrectionRule) Applies(scores CategoryScores) bool {
	return scores[r.Trigger] >= r.TriggerMin && scores[r.Guard] <= r.GuardMax
}

// DefaultCorrectionRules returns the correction rules in evaluation order.
// Every matching rule contributes its penalty; they are cumulative.
func DefaultCorrectionRules() []CorrectionRule {
	return []CorrectionRule{
		// High metacognition with poor study strategy: awareness without
		// execution inflates the composite.
		{Name: "aware-but-unstructured", Trigger: "D", TriggerMin: 95, Guard: "E", GuardMax: 50, Penalty: -3},
		// High focus with low-quality study time: intensity without volume.
		{Name: "focused-but-idle", Trigger: "B", TriggerMin: 95, Guard: "A", GuardMax: 50, Penalty: -3},
	}
}

// CorrectionFor sums the penalties of all rules that apply.
func CorrectionFor(scores CategoryScores, rules []CorrectionRule) int {
	total := 0
	for _, r := range rules {
		if r.Applies(scores) {
			total += r.Penalty
		}
	}
	return total
}
