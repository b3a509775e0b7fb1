package reportgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sgslabs/sgsdiag/internal/llm"
)

// LLMGenerator produces the narrative by calling an LLM provider directly.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

type reportOutput struct {
	ReportText string `json:"report_text"`
}

func (g *LLMGenerator) GenerateReport(ctx context.Context, input Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "report")

	req := llm.Request{
		System: reportSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportUserMessage(input)},
		},
		Schema:      ReportSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("report generation: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse report response: %w", err)
	}
	if out.ReportText == "" {
		return "", fmt.Errorf("report generation: empty report text")
	}
	return out.ReportText, nil
}
