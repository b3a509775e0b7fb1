package processing

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/reportgen"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/screens/reportview"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/sgslabs/sgsdiag/internal/ui/layout"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

const pollInterval = 300 * time.Millisecond

type pollMsg struct{}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// quizResumer rebuilds the quiz screen after a failed generation. Injected
// as a function so this package does not import the quiz package back.
type quizResumer func(session *assessment.Session, notice string) screen.Screen

// ProcessingScreen waits on async report generation for a submitted
// session. Success replaces it with the report view; failure returns the
// session to the battery with answers intact.
type ProcessingScreen struct {
	session   *assessment.Session
	reportSvc *reportgen.Service
	genName   string
	eventRepo store.EventRepo
	resume    quizResumer
	ticks     int
}

var _ screen.Screen = (*ProcessingScreen)(nil)
var _ screen.KeyHintProvider = (*ProcessingScreen)(nil)

// New creates a processing screen for a session in the submitting phase.
func New(session *assessment.Session, reportSvc *reportgen.Service, genName string, eventRepo store.EventRepo, resume quizResumer) *ProcessingScreen {
	return &ProcessingScreen{
		session:   session,
		reportSvc: reportSvc,
		genName:   genName,
		eventRepo: eventRepo,
		resume:    resume,
	}
}

func (s *ProcessingScreen) Init() tea.Cmd {
	result := s.session.Result()
	s.reportSvc.RequestReport(context.Background(), reportgen.Input{
		User:       s.session.User,
		PAI:        result.PAI,
		Categories: result.Categories,
	})
	return pollCmd()
}

func (s *ProcessingScreen) Title() string {
	return "분석 중"
}

// ApplicantCode exposes the session's unique code for the header.
func (s *ProcessingScreen) ApplicantCode() string {
	return s.session.User.Code
}

func (s *ProcessingScreen) KeyHints() []layout.KeyHint {
	return nil
}

func (s *ProcessingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(pollMsg); !ok {
		return s, nil
	}
	s.ticks++

	text, err, ok := s.reportSvc.ConsumeReport()
	if !ok {
		return s, pollCmd()
	}

	result := s.session.Result()

	if err != nil {
		_ = s.eventRepo.AppendReport(context.Background(), store.ReportEventData{
			SessionID:    s.session.ID,
			Generator:    s.genName,
			Success:      false,
			PAI:          result.PAI,
			ErrorMessage: err.Error(),
		})
		s.appendAssessmentEvent("report_failed", result)
		s.session.ReportFailed()

		next := s.resume(s.session, "리포트 생성에 실패했습니다. 마지막 문항을 다시 제출해 주세요.")
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	if err := s.session.CompleteReport(text); err != nil {
		return s, nil
	}
	_ = s.eventRepo.AppendReport(context.Background(), store.ReportEventData{
		SessionID:  s.session.ID,
		Generator:  s.genName,
		Success:    true,
		PAI:        result.PAI,
		ReportText: text,
	})
	s.appendAssessmentEvent("completed", result)

	next := reportview.New(s.session.User, result, text)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ProcessingScreen) appendAssessmentEvent(action string, result assessment.Result) {
	_ = s.eventRepo.AppendAssessment(context.Background(), store.AssessmentEventData{
		SessionID:      s.session.ID,
		Action:         action,
		ApplicantName:  s.session.User.Name,
		ApplicantGrade: s.session.User.Grade,
		ApplicantCode:  s.session.User.Code,
		PAI:            result.PAI,
		CategoryScores: result.Categories,
		AnswerCount:    len(s.session.Answers),
	})
}

func (s *ProcessingScreen) View(width, height int) string {
	dots := strings.Repeat("·", s.ticks%4)

	content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("SGS 분석 엔진이 결과를 작성하고 있습니다"+dots) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("응답 48개를 기반으로 잠재력 지수를 산출하는 중입니다.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}
