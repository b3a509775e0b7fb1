package reportgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/scoring"
)

func testInput() Input {
	return Input{
		User: assessment.UserInfo{
			Name:  "김민준",
			Grade: "고2",
			Phone: "010-1234-5678",
			Code:  "SGS-김민준-4821",
		},
		PAI: 73,
		Categories: scoring.CategoryScores{
			"A": 100, "B": 40, "C": 70, "D": 96, "E": 45, "F": 80,
		},
	}
}

func TestRemoteGenerator_Success(t *testing.T) {
	var gotBody remoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("got content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"reportText": "1. 종합 판정\n본문"})
	}))
	defer srv.Close()

	g := NewRemoteGenerator(srv.URL)
	text, err := g.GenerateReport(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(text, "1. 종합 판정") {
		t.Errorf("got report %q", text)
	}
	if gotBody.PAI != 73 {
		t.Errorf("got pai %d, want 73", gotBody.PAI)
	}
	if gotBody.UserInfo.Name != "김민준" {
		t.Errorf("got name %q", gotBody.UserInfo.Name)
	}
	if gotBody.Categories["D"] != 96 {
		t.Errorf("got category D %v, want 96", gotBody.Categories["D"])
	}
}

func TestRemoteGenerator_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Report generation failed"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewRemoteGenerator(srv.URL)
	if _, err := g.GenerateReport(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
}

func TestRemoteGenerator_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := NewRemoteGenerator(srv.URL)
	if _, err := g.GenerateReport(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestRemoteGenerator_EmptyReportText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"reportText": ""})
	}))
	defer srv.Close()

	g := NewRemoteGenerator(srv.URL)
	if _, err := g.GenerateReport(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for empty report text, got nil")
	}
}

func TestRemoteGenerator_Unreachable(t *testing.T) {
	g := NewRemoteGenerator("http://127.0.0.1:1")
	if _, err := g.GenerateReport(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for unreachable endpoint, got nil")
	}
}
