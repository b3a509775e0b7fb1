package assessment

import (
	"strings"
	"testing"

	"github.com/sgslabs/sgsdiag/internal/catalog"
)

func testUser() UserInfo {
	return UserInfo{Name: "김민준", Grade: "고2", Phone: "010-1234-5678", Code: "SGS-김민준-1234"}
}

func beginSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	if err := s.Begin(testUser()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return s
}

func TestNewSession_Initial(t *testing.T) {
	s := NewSession()
	if s.Phase != PhaseNotStarted {
		t.Errorf("got phase %v, want PhaseNotStarted", s.Phase)
	}
	if len(s.Questions) != catalog.QuestionCount() {
		t.Errorf("got %d questions, want %d", len(s.Questions), catalog.QuestionCount())
	}
	if s.ID == "" {
		t.Error("session ID should be set")
	}
}

func TestBegin_TwiceFails(t *testing.T) {
	s := beginSession(t)
	if err := s.Begin(testUser()); err == nil {
		t.Fatal("expected error for double Begin, got nil")
	}
}

func TestAdvance_RecordsEveryAnswer(t *testing.T) {
	s := beginSession(t)
	n := len(s.Questions)
	for i := 0; i < n; i++ {
		if s.Phase != PhaseInProgress {
			t.Fatalf("advance %d: got phase %v, want PhaseInProgress", i, s.Phase)
		}
		if err := s.Advance(3); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if len(s.Answers) != n {
		t.Errorf("got %d answers, want %d", len(s.Answers), n)
	}
	if s.Phase != PhaseSubmitting {
		t.Errorf("got phase %v after final advance, want PhaseSubmitting", s.Phase)
	}
}

func TestAdvance_AppliesReverseScoring(t *testing.T) {
	s := beginSession(t)
	for {
		q, err := s.Current()
		if err != nil {
			break
		}
		if err := s.Advance(4); err != nil {
			t.Fatal(err)
		}
		want := 4
		if q.Reverse {
			want = 0
		}
		if got := s.Answers[q.ID]; got != want {
			t.Errorf("question %s: got effective %d, want %d", q.ID, got, want)
		}
		if s.Phase != PhaseInProgress {
			break
		}
	}
}

func TestAdvance_RejectsOutOfRange(t *testing.T) {
	s := beginSession(t)
	if err := s.Advance(5); err == nil {
		t.Fatal("expected error for raw score 5, got nil")
	}
	if err := s.Advance(-1); err == nil {
		t.Fatal("expected error for raw score -1, got nil")
	}
	if len(s.Answers) != 0 {
		t.Errorf("rejected answers should not be recorded, got %d", len(s.Answers))
	}
}

func TestAdvance_BeforeBeginFails(t *testing.T) {
	s := NewSession()
	if err := s.Advance(2); err == nil {
		t.Fatal("expected error for Advance before Begin, got nil")
	}
}

func TestCompleteReport(t *testing.T) {
	s := beginSession(t)
	for i := 0; i < len(s.Questions); i++ {
		if err := s.Advance(2); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.CompleteReport("리포트 본문"); err != nil {
		t.Fatalf("CompleteReport: %v", err)
	}
	if s.Phase != PhaseComplete {
		t.Errorf("got phase %v, want PhaseComplete", s.Phase)
	}
	if s.ReportText != "리포트 본문" {
		t.Errorf("got report %q", s.ReportText)
	}
}

func TestCompleteReport_WrongPhase(t *testing.T) {
	s := beginSession(t)
	if err := s.CompleteReport("x"); err == nil {
		t.Fatal("expected error for CompleteReport mid-battery, got nil")
	}
}

func TestReportFailed_PreservesAnswers(t *testing.T) {
	s := beginSession(t)
	for i := 0; i < len(s.Questions); i++ {
		if err := s.Advance(2); err != nil {
			t.Fatal(err)
		}
	}
	s.ReportFailed()
	if s.Phase != PhaseInProgress {
		t.Errorf("got phase %v, want PhaseInProgress", s.Phase)
	}
	if len(s.Answers) != len(s.Questions) {
		t.Errorf("answers lost on failure: got %d, want %d", len(s.Answers), len(s.Questions))
	}
	// Resubmitting the last question returns to PhaseSubmitting.
	if err := s.Advance(2); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseSubmitting {
		t.Errorf("got phase %v after resubmit, want PhaseSubmitting", s.Phase)
	}
}

func TestReset(t *testing.T) {
	s := beginSession(t)
	if err := s.Advance(3); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if s.Phase != PhaseNotStarted {
		t.Errorf("got phase %v, want PhaseNotStarted", s.Phase)
	}
	if len(s.Answers) != 0 {
		t.Errorf("got %d answers after reset, want 0", len(s.Answers))
	}
	if s.CurrentIndex != 0 {
		t.Errorf("got index %d after reset, want 0", s.CurrentIndex)
	}
}

func TestProgress(t *testing.T) {
	s := beginSession(t)
	if got := s.Progress(); got != 2 {
		// First of 48 questions on screen: round(1/48*100) = 2.
		t.Errorf("got progress %d, want 2", got)
	}
	for i := 0; i < 23; i++ {
		if err := s.Advance(2); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Progress(); got != 50 {
		t.Errorf("got progress %d at midpoint, want 50", got)
	}
	for i := 0; i < 24; i++ {
		if err := s.Advance(2); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Progress(); got != 100 {
		t.Errorf("got progress %d after final answer, want 100", got)
	}
}

func TestResult_UsesScoringPipeline(t *testing.T) {
	s := beginSession(t)
	for i := 0; i < len(s.Questions); i++ {
		if err := s.Advance(4); err != nil {
			t.Fatal(err)
		}
	}
	// Reverse items answered 4 record effective 0, so categories with
	// reverse questions score below 100.
	r := s.Result()
	if !r.Valid {
		t.Fatal("fully answered session should have a valid result")
	}
	if r.Categories["A"] != 75 {
		// A has 2 reverse items of 8: (6*4)/(8*4)*100 = 75.
		t.Errorf("category A: got %v, want 75", r.Categories["A"])
	}
	if r.PAI <= 0 || r.PAI > 100 {
		t.Errorf("PAI %d out of range", r.PAI)
	}
}

func TestResult_NoAnswersIsInvalid(t *testing.T) {
	s := beginSession(t)
	r := s.Result()
	if r.Valid {
		t.Errorf("session without answers reported valid result: PAI %d", r.PAI)
	}
	if err := s.Advance(3); err != nil {
		t.Fatal(err)
	}
	if r := s.Result(); !r.Valid {
		t.Error("session with an answer should have a valid result")
	}
}

func TestUserInfo_Validate(t *testing.T) {
	if err := testUser().Validate(); err != nil {
		t.Errorf("valid info rejected: %v", err)
	}
	bad := UserInfo{Name: " ", Grade: "고1", Phone: "010"}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected error for blank name, got nil")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error should mention name, got: %v", err)
	}
}

func TestNewUniqueCode_Format(t *testing.T) {
	code := NewUniqueCode("김민준")
	if !strings.HasPrefix(code, "SGS-김민준-") {
		t.Errorf("got code %q, want SGS-김민준-NNNN", code)
	}
	suffix := strings.TrimPrefix(code, "SGS-김민준-")
	if len(suffix) != 4 {
		t.Errorf("got %d-digit suffix %q, want 4 digits", len(suffix), suffix)
	}
}
