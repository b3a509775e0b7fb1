package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the battery definition.
// Returns a combined error describing every problem found, or nil if valid.
func validateCatalog(categories []Category, questions []Question, tiers []TierEntry) error {
	var errs []string

	catIDs := make(map[string]bool, len(categories))
	for _, c := range categories {
		if catIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		catIDs[c.ID] = true
		if c.Weight < 0 {
			errs = append(errs, fmt.Sprintf("category %q: weight must be >= 0, got %v", c.ID, c.Weight))
		}
	}

	// At least one category must carry weight or the composite denominator
	// would be zero.
	totalWeight := 0.0
	for _, c := range categories {
		totalWeight += c.Weight
	}
	if len(categories) > 0 && totalWeight <= 0 {
		errs = append(errs, "all category weights are zero")
	}

	qIDs := make(map[string]bool, len(questions))
	for _, q := range questions {
		if qIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		qIDs[q.ID] = true
		if !catIDs[q.Category] {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent category %q", q.ID, q.Category))
		}
	}

	errs = append(errs, validateTiers(tiers)...)

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateTiers checks that the tier ranges partition [0,100]: every integer
// score falls in exactly one entry, with no gaps and no overlaps.
func validateTiers(tiers []TierEntry) []string {
	var errs []string

	if len(tiers) == 0 {
		return []string{"tier table is empty"}
	}

	for _, t := range tiers {
		if t.Low > t.High {
			errs = append(errs, fmt.Sprintf("tier %q: range [%d,%d] is inverted", t.Grade, t.Low, t.High))
		}
	}

	for score := 0; score <= 100; score++ {
		matches := 0
		for _, t := range tiers {
			if t.Contains(score) {
				matches++
			}
		}
		switch {
		case matches == 0:
			errs = append(errs, fmt.Sprintf("score %d is not covered by any tier", score))
		case matches > 1:
			errs = append(errs, fmt.Sprintf("score %d is covered by %d tiers", score, matches))
		}
	}

	return errs
}
