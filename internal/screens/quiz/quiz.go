package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/reportgen"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/screens/processing"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/sgslabs/sgsdiag/internal/ui/components"
	"github.com/sgslabs/sgsdiag/internal/ui/layout"
)

// QuizScreen runs the Likert battery for one session. After the final
// answer it hands the session to the processing screen for report
// generation; a failed generation comes back here with the answers intact.
type QuizScreen struct {
	session    *assessment.Session
	reportSvc  *reportgen.Service
	genName    string
	eventRepo  store.EventRepo
	likert     components.Likert
	notice     string
	confirming bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for a session already past the applicant step.
func New(session *assessment.Session, reportSvc *reportgen.Service, genName string, eventRepo store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		session:   session,
		reportSvc: reportSvc,
		genName:   genName,
		eventRepo: eventRepo,
	}
	s.loadCurrent()
	return s
}

// NewWithNotice creates a quiz screen showing a one-line notice, used when
// report generation fails and the applicant must resubmit.
func NewWithNotice(session *assessment.Session, reportSvc *reportgen.Service, genName string, eventRepo store.EventRepo, notice string) *QuizScreen {
	s := New(session, reportSvc, genName, eventRepo)
	s.notice = notice
	return s
}

func (s *QuizScreen) loadCurrent() {
	q, err := s.session.Current()
	if err != nil {
		s.likert = components.NewLikert("")
		return
	}
	s.likert = components.NewLikert(q.Text)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "진단 검사"
}

// ApplicantCode exposes the session's unique code for the header.
func (s *QuizScreen) ApplicantCode() string {
	return s.session.User.Code
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "진단 중단"},
			{Key: "N", Description: "계속"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "선택"},
		{Key: "Enter", Description: "다음"},
		{Key: "Esc", Description: "중단"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.appendAssessmentEvent("reset")
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	if kmsg.String() == "esc" {
		s.confirming = true
		return s, nil
	}

	var cmd tea.Cmd
	s.likert, cmd = s.likert.Update(msg)
	if !s.likert.Submitted {
		return s, cmd
	}

	return s.recordAnswer(s.likert.Value())
}

// recordAnswer applies the raw answer to the session, logs it, and either
// shows the next question or hands off to report generation.
func (s *QuizScreen) recordAnswer(raw int) (screen.Screen, tea.Cmd) {
	q, err := s.session.Current()
	if err != nil {
		return s, nil
	}
	if err := s.session.Advance(raw); err != nil {
		s.notice = err.Error()
		s.loadCurrent()
		return s, nil
	}
	s.notice = ""

	_ = s.eventRepo.AppendAnswer(context.Background(), store.AnswerEventData{
		SessionID:      s.session.ID,
		QuestionID:     q.ID,
		Category:       q.Category,
		RawScore:       raw,
		EffectiveScore: s.session.Answers[q.ID],
		Reverse:        q.Reverse,
	})

	if s.session.Phase == assessment.PhaseSubmitting {
		s.appendAssessmentEvent("submitted")
		next := processing.New(s.session, s.reportSvc, s.genName, s.eventRepo,
			func(session *assessment.Session, notice string) screen.Screen {
				return NewWithNotice(session, s.reportSvc, s.genName, s.eventRepo, notice)
			})
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.loadCurrent()
	return s, nil
}

func (s *QuizScreen) appendAssessmentEvent(action string) {
	data := store.AssessmentEventData{
		SessionID:      s.session.ID,
		Action:         action,
		ApplicantName:  s.session.User.Name,
		ApplicantGrade: s.session.User.Grade,
		ApplicantCode:  s.session.User.Code,
		AnswerCount:    len(s.session.Answers),
	}
	// A session with no answers has no composite to log.
	if result := s.session.Result(); result.Valid {
		data.PAI = result.PAI
		data.CategoryScores = result.Categories
	}
	_ = s.eventRepo.AppendAssessment(context.Background(), data)
}
