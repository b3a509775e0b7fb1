package reportgen

import "time"

// Config holds report generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for report generation.
// Reports run several thousand characters, so the token budget is large.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// DefaultRemoteTimeout bounds a single call to the hosted report endpoint.
const DefaultRemoteTimeout = 15 * time.Second

// DefaultRemoteURL is the hosted report endpoint used when neither
// SGSDIAG_REPORT_URL nor an LLM provider is configured.
const DefaultRemoteURL = "https://api.sgs-edu.kr/v1/diagnostic/report"
