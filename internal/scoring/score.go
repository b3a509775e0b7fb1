package scoring

import (
	"fmt"
	"math"

	"github.com/sgslabs/sgsdiag/internal/catalog"
)

// CategoryScores maps category ID to a 0-100 score.
type CategoryScores map[string]float64

// EffectiveScore converts a raw Likert answer into the score that is
// recorded and aggregated. Reverse-keyed items are inverted so that a
// higher effective score always means a stronger trait.
func EffectiveScore(q catalog.Question, raw int) (int, error) {
	if raw < 0 || raw > catalog.RawScoreMax {
		return 0, fmt.Errorf("raw score %d out of range [0,%d]", raw, catalog.RawScoreMax)
	}
	if q.Reverse {
		return catalog.RawScoreMax - raw, nil
	}
	return raw, nil
}

// ScoreCategories aggregates effective answers (keyed by question ID) into
// per-category 0-100 scores. Unanswered questions count as zero, so a
// partial answer set yields proportionally lower scores rather than an error.
// An empty answer set returns an empty map: no answers means no scores, which
// keeps the absent state distinguishable from a genuine all-zero result.
func ScoreCategories(answers map[string]int) CategoryScores {
	scores := make(CategoryScores)
	if len(answers) == 0 {
		return scores
	}
	for _, cat := range catalog.Categories() {
		qs := catalog.QuestionsFor(cat.ID)
		maxPossible := len(qs) * catalog.RawScoreMax
		if maxPossible == 0 {
			scores[cat.ID] = 0
			continue
		}
		sum := 0
		for _, q := range qs {
			sum += answers[q.ID]
		}
		scores[cat.ID] = float64(sum) / float64(maxPossible) * 100
	}
	return scores
}

// Composite computes the PAI: the weight-normalized average of category
// scores, rounded to the nearest integer, with correction rules applied
// and the result clamped to [0,100]. The second return is false when there
// are no scores to aggregate; the composite is undefined then, not zero.
func Composite(scores CategoryScores) (int, bool) {
	if len(scores) == 0 {
		return 0, false
	}
	totalWeight := 0.0
	weighted := 0.0
	for _, cat := range catalog.Categories() {
		totalWeight += cat.Weight
		weighted += scores[cat.ID] * cat.Weight
	}
	if totalWeight == 0 {
		return 0, false
	}
	total := int(math.Round(weighted / totalWeight))
	total += CorrectionFor(scores, DefaultCorrectionRules())
	return clamp(total, 0, 100), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
