package reportgen

import "github.com/sgslabs/sgsdiag/internal/llm"

// ReportSchema defines the JSON schema for narrative report generation.
var ReportSchema = &llm.Schema{
	Name:        "diagnostic-report",
	Description: "Full narrative diagnostic report in the SGS house format",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"report_text": map[string]any{
				"type":        "string",
				"description": "The complete report body following the SGS line conventions: numbered major sections, circled-numeral category sections, labeled analysis lines, and the future simulation block",
			},
		},
		"required":             []any{"report_text"},
		"additionalProperties": false,
	},
}
