package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	err := Validate()
	if err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateCatalog_DetectsDuplicateCategoryID(t *testing.T) {
	cats := []Category{
		{ID: "A", Weight: 10},
		{ID: "A", Weight: 10},
	}
	err := validateCatalog(cats, nil, minimalValidTiers())
	if err == nil {
		t.Fatal("expected error for duplicate category ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate category") {
		t.Errorf("error should mention duplicate category, got: %v", err)
	}
}

func TestValidateCatalog_DetectsNegativeWeight(t *testing.T) {
	cats := []Category{{ID: "A", Weight: -5}}
	err := validateCatalog(cats, nil, minimalValidTiers())
	if err == nil {
		t.Fatal("expected error for negative weight, got nil")
	}
	if !strings.Contains(err.Error(), "weight") {
		t.Errorf("error should mention weight, got: %v", err)
	}
}

func TestValidateCatalog_DetectsAllZeroWeights(t *testing.T) {
	cats := []Category{
		{ID: "A", Weight: 0},
		{ID: "B", Weight: 0},
	}
	err := validateCatalog(cats, nil, minimalValidTiers())
	if err == nil {
		t.Fatal("expected error for all-zero weights, got nil")
	}
}

func TestValidateCatalog_DetectsDuplicateQuestionID(t *testing.T) {
	cats := []Category{{ID: "A", Weight: 10}}
	qs := []Question{
		{ID: "a1", Category: "A"},
		{ID: "a1", Category: "A"},
	}
	err := validateCatalog(cats, qs, minimalValidTiers())
	if err == nil {
		t.Fatal("expected error for duplicate question ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate question") {
		t.Errorf("error should mention duplicate question, got: %v", err)
	}
}

func TestValidateCatalog_DetectsDanglingCategoryRef(t *testing.T) {
	cats := []Category{{ID: "A", Weight: 10}}
	qs := []Question{{ID: "z1", Category: "Z"}}
	err := validateCatalog(cats, qs, minimalValidTiers())
	if err == nil {
		t.Fatal("expected error for dangling category reference, got nil")
	}
	if !strings.Contains(err.Error(), `"Z"`) {
		t.Errorf("error should mention the missing category ID, got: %v", err)
	}
}

func TestValidateTiers_DetectsGap(t *testing.T) {
	tiers := []TierEntry{
		{Grade: "1", Low: 51, High: 100},
		{Grade: "2", Low: 0, High: 49},
	}
	errs := validateTiers(tiers)
	if len(errs) == 0 {
		t.Fatal("expected errors for uncovered score, got none")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e, "score 50 is not covered") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors should name the uncovered score, got: %v", errs)
	}
}

func TestValidateTiers_DetectsOverlap(t *testing.T) {
	tiers := []TierEntry{
		{Grade: "1", Low: 50, High: 100},
		{Grade: "2", Low: 0, High: 50},
	}
	errs := validateTiers(tiers)
	if len(errs) == 0 {
		t.Fatal("expected errors for overlapping tiers, got none")
	}
}

func TestValidateTiers_DetectsInvertedRange(t *testing.T) {
	tiers := minimalValidTiers()
	tiers[0].Low, tiers[0].High = tiers[0].High, tiers[0].Low
	errs := validateTiers(tiers)
	if len(errs) == 0 {
		t.Fatal("expected error for inverted range, got none")
	}
	if !strings.Contains(errs[0], "inverted") {
		t.Errorf("error should mention inverted range, got: %v", errs)
	}
}

func TestValidateTiers_DetectsEmptyTable(t *testing.T) {
	errs := validateTiers(nil)
	if len(errs) == 0 {
		t.Fatal("expected error for empty tier table, got none")
	}
}

// minimalValidTiers returns a two-entry table partitioning [0,100].
func minimalValidTiers() []TierEntry {
	return []TierEntry{
		{Grade: "high", Low: 50, High: 100},
		{Grade: "low", Low: 0, High: 49},
	}
}
