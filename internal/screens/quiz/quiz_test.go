package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/reportgen"
	"github.com/sgslabs/sgsdiag/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	assessmentEvents []store.AssessmentEventData
	answerEvents     []store.AnswerEventData
	reportEvents     []store.ReportEventData
}

func (m *mockEventRepo) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	m.assessmentEvents = append(m.assessmentEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendReport(_ context.Context, data store.ReportEventData) error {
	m.reportEvents = append(m.reportEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) CompletedAssessments(_ context.Context, _ store.QueryOpts) ([]store.AssessmentRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswersForSession(_ context.Context, _ string) ([]store.AnswerEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) ReportForSession(_ context.Context, _ string) (*store.ReportRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

// stubGenerator returns fixed report text.
type stubGenerator struct{}

func (stubGenerator) GenerateReport(_ context.Context, _ reportgen.Input) (string, error) {
	return "1. 종합 판정", nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T) (*QuizScreen, *mockEventRepo) {
	t.Helper()
	session := assessment.NewSession()
	if err := session.Begin(assessment.UserInfo{
		Name: "서준", Grade: "고1", Phone: "01012345678", Code: "SGS-서준-1234",
	}); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	repo := &mockEventRepo{}
	svc := reportgen.NewService(stubGenerator{})
	return New(session, svc, "llm", repo), repo
}

func TestAnswerAdvancesAndLogs(t *testing.T) {
	s, repo := testQuizScreen(t)

	// Pick option 5 (raw 4) and submit.
	s.Update(keyPress('5'))
	s.Update(specialKey(tea.KeyEnter))

	if got := s.session.CurrentIndex; got != 1 {
		t.Errorf("CurrentIndex = %d, want 1", got)
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}

	ev := repo.answerEvents[0]
	first := s.session.Questions[0]
	if ev.QuestionID != first.ID {
		t.Errorf("QuestionID = %q, want %q", ev.QuestionID, first.ID)
	}
	if ev.RawScore != 4 {
		t.Errorf("RawScore = %d, want 4", ev.RawScore)
	}
	want := 4
	if first.Reverse {
		want = 0
	}
	if ev.EffectiveScore != want {
		t.Errorf("EffectiveScore = %d, want %d", ev.EffectiveScore, want)
	}
}

func TestLastAnswerHandsOffToProcessing(t *testing.T) {
	s, repo := testQuizScreen(t)

	n := catalog.QuestionCount()
	for i := 0; i < n; i++ {
		s.Update(keyPress('3'))
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if i == n-1 && cmd == nil {
			t.Fatal("expected navigation command after final answer")
		}
	}

	if s.session.Phase != assessment.PhaseSubmitting {
		t.Errorf("phase = %s, want submitting", s.session.Phase)
	}
	if len(repo.answerEvents) != n {
		t.Errorf("answer events = %d, want %d", len(repo.answerEvents), n)
	}

	var submitted bool
	for _, ev := range repo.assessmentEvents {
		if ev.Action == "submitted" {
			submitted = true
			if ev.AnswerCount != n {
				t.Errorf("AnswerCount = %d, want %d", ev.AnswerCount, n)
			}
		}
	}
	if !submitted {
		t.Error("expected a submitted assessment event")
	}
}

func TestEscConfirmsBeforeQuitting(t *testing.T) {
	s, repo := testQuizScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirming {
		t.Fatal("expected confirmation prompt after esc")
	}

	// N keeps the battery running.
	s.Update(keyPress('n'))
	if s.confirming {
		t.Error("expected confirmation dismissed after n")
	}

	// Y abandons and logs a reset event.
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command after y")
	}
	var reset bool
	for _, ev := range repo.assessmentEvents {
		if ev.Action == "reset" {
			reset = true
		}
	}
	if !reset {
		t.Error("expected a reset assessment event")
	}
}

func TestAbandonWithoutAnswersLogsNoScores(t *testing.T) {
	s, repo := testQuizScreen(t)

	// Abandon before answering anything: the reset event must not carry a
	// composite, because no answers means the PAI is undefined.
	s.Update(specialKey(tea.KeyEscape))
	s.Update(keyPress('y'))

	if len(repo.assessmentEvents) != 1 {
		t.Fatalf("assessment events = %d, want 1", len(repo.assessmentEvents))
	}
	ev := repo.assessmentEvents[0]
	if ev.AnswerCount != 0 {
		t.Errorf("AnswerCount = %d, want 0", ev.AnswerCount)
	}
	if len(ev.CategoryScores) != 0 {
		t.Errorf("CategoryScores = %v, want none", ev.CategoryScores)
	}
}

func TestAbandonAfterAnswersLogsScores(t *testing.T) {
	s, repo := testQuizScreen(t)

	s.Update(keyPress('4'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEscape))
	s.Update(keyPress('y'))

	var reset *store.AssessmentEventData
	for i := range repo.assessmentEvents {
		if repo.assessmentEvents[i].Action == "reset" {
			reset = &repo.assessmentEvents[i]
		}
	}
	if reset == nil {
		t.Fatal("expected a reset assessment event")
	}
	if reset.AnswerCount != 1 {
		t.Errorf("AnswerCount = %d, want 1", reset.AnswerCount)
	}
	if len(reset.CategoryScores) == 0 {
		t.Error("expected category scores on a partially answered reset")
	}
}

func TestNoticeShownAfterFailure(t *testing.T) {
	session := assessment.NewSession()
	_ = session.Begin(assessment.UserInfo{Name: "a", Grade: "b", Phone: "c", Code: "SGS-a-1000"})

	s := NewWithNotice(session, reportgen.NewService(stubGenerator{}), "llm", &mockEventRepo{}, "다시 제출해 주세요.")
	if s.notice == "" {
		t.Error("expected notice to be set")
	}
}
