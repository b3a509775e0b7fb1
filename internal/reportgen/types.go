package reportgen

import (
	"context"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/scoring"
)

// Input carries everything the narrative generator needs: who took the
// diagnostic and what they scored.
type Input struct {
	User       assessment.UserInfo
	PAI        int
	Categories scoring.CategoryScores
}

// Generator produces the narrative report text for a scored diagnostic.
// Implementations: LLMGenerator (direct provider call) and RemoteGenerator
// (hosted report endpoint).
type Generator interface {
	GenerateReport(ctx context.Context, input Input) (string, error)
}
