package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryAssessments(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	scores := map[string]float64{"A": 75, "B": 60, "C": 80, "D": 70, "E": 65, "F": 90}
	events := []AssessmentEventData{
		{SessionID: "s1", Action: "started", ApplicantName: "김민준", ApplicantGrade: "고2", ApplicantCode: "SGS-김민준-1111"},
		{SessionID: "s1", Action: "completed", ApplicantName: "김민준", ApplicantGrade: "고2", ApplicantCode: "SGS-김민준-1111", PAI: 72, CategoryScores: scores, AnswerCount: 48},
		{SessionID: "s2", Action: "started", ApplicantName: "이서연", ApplicantGrade: "고3", ApplicantCode: "SGS-이서연-2222"},
	}
	for i, e := range events {
		if err := repo.AppendAssessment(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.CompletedAssessments(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d completed records, want 1", len(records))
	}
	r := records[0]
	if r.SessionID != "s1" {
		t.Errorf("session = %q, want s1", r.SessionID)
	}
	if r.PAI != 72 {
		t.Errorf("pai = %d, want 72", r.PAI)
	}
	if r.CategoryScores["F"] != 90 {
		t.Errorf("category F = %v, want 90", r.CategoryScores["F"])
	}
}

func TestCompletedAssessments_NewestFirstAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAssessment(ctx, AssessmentEventData{
			SessionID: string(rune('a' + i)),
			Action:    "completed",
			PAI:       70 + i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.CompletedAssessments(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].PAI != 72 || records[1].PAI != 71 {
		t.Errorf("got PAIs %d, %d; want 72, 71 (newest first)", records[0].PAI, records[1].PAI)
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: "a1", Category: "A", RawScore: 3, EffectiveScore: 3},
		{SessionID: "s1", QuestionID: "a3", Category: "A", RawScore: 4, EffectiveScore: 0, Reverse: true},
		{SessionID: "s2", QuestionID: "a1", Category: "A", RawScore: 2, EffectiveScore: 2},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.AnswersForSession(ctx, "s1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers, want 2", len(got))
	}
	if got[0].QuestionID != "a1" || got[1].QuestionID != "a3" {
		t.Errorf("answers out of order: %v", got)
	}
	if !got[1].Reverse || got[1].EffectiveScore != 0 {
		t.Errorf("reverse answer not preserved: %+v", got[1])
	}
}

func TestAppendAndQueryReports(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// A failed attempt followed by a success.
	err := repo.AppendReport(ctx, ReportEventData{
		SessionID: "s1", Generator: "remote", Success: false, ErrorMessage: "timeout",
	})
	if err != nil {
		t.Fatalf("append failure: %v", err)
	}
	err = repo.AppendReport(ctx, ReportEventData{
		SessionID: "s1", Generator: "llm", Success: true, PAI: 73, ReportText: "1. 종합 판정",
	})
	if err != nil {
		t.Fatalf("append success: %v", err)
	}

	rec, err := repo.ReportForSession(ctx, "s1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a report record")
	}
	if rec.Generator != "llm" || rec.PAI != 73 {
		t.Errorf("got %+v", rec)
	}

	// Unknown session → nil, no error.
	rec, err = repo.ReportForSession(ctx, "nope")
	if err != nil {
		t.Fatalf("query unknown: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for unknown session, got %+v", rec)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "report",
		InputTokens:  1200,
		OutputTokens: 3400,
		LatencyMs:    2100,
		Success:      true,
		RequestBody:  "system: ...",
		ResponseBody: `{"report_text":"..."}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "report" || e.InputTokens != 1200 || !e.Success {
		t.Errorf("got %+v", e)
	}

	byID, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if byID == nil || byID.ResponseBody != `{"report_text":"..."}` {
		t.Errorf("got %+v", byID)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing ID, got %+v", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "report", InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "report", InputTokens: 300, OutputTokens: 400, LatencyMs: 3000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "other", InputTokens: 50, OutputTokens: 60, LatencyMs: 500, Success: false},
	}
	for i, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	var reportUsage *PurposeUsage
	for i := range byPurpose {
		if byPurpose[i].Purpose == "report" {
			reportUsage = &byPurpose[i]
		}
	}
	if reportUsage == nil {
		t.Fatal("report purpose missing")
	}
	if reportUsage.Calls != 2 || reportUsage.InputTokens != 400 || reportUsage.OutputTokens != 600 {
		t.Errorf("got %+v", reportUsage)
	}
	if reportUsage.AvgLatencyMs != 2000 {
		t.Errorf("avg latency = %d, want 2000", reportUsage.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	t.Setenv("SGSDIAG_DB", t.TempDir()+"/custom/sgsdiag.db")
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p == "" {
		t.Fatal("expected non-empty path")
	}
}
