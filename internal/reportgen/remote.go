package reportgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sgslabs/sgsdiag/internal/scoring"
)

// RemoteGenerator produces the narrative by POSTing the scored result to a
// hosted report endpoint. Any transport error, non-2xx status, or malformed
// body is a failure the caller must treat as recoverable.
type RemoteGenerator struct {
	url    string
	client *http.Client
}

// NewRemoteGenerator creates a generator targeting the given endpoint URL.
func NewRemoteGenerator(url string) *RemoteGenerator {
	return &RemoteGenerator{
		url:    url,
		client: &http.Client{Timeout: DefaultRemoteTimeout},
	}
}

type remoteRequest struct {
	UserInfo   remoteUserInfo         `json:"userInfo"`
	PAI        int                    `json:"pai"`
	Categories scoring.CategoryScores `json:"categories"`
}

type remoteUserInfo struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type remoteResponse struct {
	ReportText string `json:"reportText"`
}

func (g *RemoteGenerator) GenerateReport(ctx context.Context, input Input) (string, error) {
	payload := remoteRequest{
		UserInfo: remoteUserInfo{
			Name:  input.User.Name,
			Grade: input.User.Grade,
			Phone: input.User.Phone,
			Code:  input.User.Code,
		},
		PAI:        input.PAI,
		Categories: input.Categories,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal report request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("report endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("report endpoint returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read report response: %w", err)
	}

	var out remoteResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parse report response: %w", err)
	}
	if out.ReportText == "" {
		return "", fmt.Errorf("report endpoint returned empty report text")
	}
	return out.ReportText, nil
}
