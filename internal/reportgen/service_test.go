package reportgen

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sgslabs/sgsdiag/internal/llm"
)

func validReportJSON() json.RawMessage {
	return json.RawMessage(`{"report_text": "1. 종합 판정\n\n① 학습 시간의 질\n판정: 우수"}`)
}

// slowGenerator blocks until released, for testing the in-flight guard.
type slowGenerator struct {
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (g *slowGenerator) GenerateReport(ctx context.Context, input Input) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	<-g.release
	return "done", nil
}

func consumeWithin(t *testing.T, svc *Service, d time.Duration) (string, error) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if text, err, ok := svc.ConsumeReport(); ok {
			return text, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("report never became ready")
	return "", nil
}

func TestService_GeneratesReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReportJSON()})
	svc := NewService(NewLLMGenerator(mock, DefaultConfig()))

	if !svc.RequestReport(context.Background(), testInput()) {
		t.Fatal("RequestReport returned false on idle service")
	}
	text, err := consumeWithin(t, svc, 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "1. 종합 판정") {
		t.Errorf("got report %q", text)
	}
}

func TestService_SurfacesGenerationError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	svc := NewService(NewLLMGenerator(mock, DefaultConfig()))

	svc.RequestReport(context.Background(), testInput())
	_, err := consumeWithin(t, svc, 5*time.Second)
	if err == nil {
		t.Fatal("expected generation error, got nil")
	}
}

func TestService_DeduplicatesInFlightRequests(t *testing.T) {
	gen := &slowGenerator{release: make(chan struct{})}
	svc := NewService(gen)

	if !svc.RequestReport(context.Background(), testInput()) {
		t.Fatal("first request rejected")
	}
	if svc.RequestReport(context.Background(), testInput()) {
		t.Error("second request accepted while first in flight")
	}
	if !svc.Requesting() {
		t.Error("Requesting() should be true with a call in flight")
	}

	close(gen.release)
	if _, err := consumeWithin(t, svc, 5*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen.mu.Lock()
	calls := gen.calls
	gen.mu.Unlock()
	if calls != 1 {
		t.Errorf("got %d generator calls, want 1", calls)
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	svc := NewService(&slowGenerator{release: make(chan struct{})})
	if _, _, ok := svc.ConsumeReport(); ok {
		t.Error("ConsumeReport returned ok with nothing requested")
	}
}

func TestService_ReusableAfterConsume(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validReportJSON()},
		llm.MockResponse{Content: validReportJSON()},
	)
	svc := NewService(NewLLMGenerator(mock, DefaultConfig()))

	svc.RequestReport(context.Background(), testInput())
	if _, err := consumeWithin(t, svc, 5*time.Second); err != nil {
		t.Fatal(err)
	}
	if !svc.RequestReport(context.Background(), testInput()) {
		t.Fatal("service not reusable after consume")
	}
	if _, err := consumeWithin(t, svc, 5*time.Second); err != nil {
		t.Fatal(err)
	}
}

func TestLLMGenerator_SendsScoresInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReportJSON()})
	g := NewLLMGenerator(mock, DefaultConfig())

	if _, err := g.GenerateReport(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != ReportSchema {
		t.Error("request should carry the report schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"김민준", "73", "SGS-김민준-4821"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestLLMGenerator_EmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"report_text": ""}`)})
	g := NewLLMGenerator(mock, DefaultConfig())
	if _, err := g.GenerateReport(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for empty report text, got nil")
	}
}
