package apply

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/reportgen"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/screens/quiz"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/sgslabs/sgsdiag/internal/ui/components"
	"github.com/sgslabs/sgsdiag/internal/ui/layout"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

var fieldLabels = []string{"이름", "학년", "연락처"}

// ApplyScreen captures the applicant's info before the battery starts.
// Submitting issues the unique tracking code and replaces this screen with
// the quiz.
type ApplyScreen struct {
	reportSvc *reportgen.Service
	genName   string
	eventRepo store.EventRepo
	inputs    []components.TextInput
	focused   int
	errMsg    string
}

var _ screen.Screen = (*ApplyScreen)(nil)
var _ screen.KeyHintProvider = (*ApplyScreen)(nil)

// New creates the application form.
func New(reportSvc *reportgen.Service, genName string, eventRepo store.EventRepo) *ApplyScreen {
	inputs := []components.TextInput{
		components.NewTextInput("예: 김서준", false, 20),
		components.NewTextInput("예: 고1", false, 10),
		components.NewTextInput("예: 01012345678", true, 11),
	}
	inputs[0].Model.Focus()
	inputs[1].Model.Blur()
	inputs[2].Model.Blur()
	return &ApplyScreen{
		reportSvc: reportSvc,
		genName:   genName,
		eventRepo: eventRepo,
		inputs:    inputs,
	}
}

func (s *ApplyScreen) Init() tea.Cmd {
	return s.inputs[0].Init()
}

func (s *ApplyScreen) Title() string {
	return "진단 신청"
}

func (s *ApplyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "다음 항목"},
		{Key: "Enter", Description: "확인"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ApplyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "shift+tab":
			return s.cycleFocus(kmsg.String() == "shift+tab")
		case "enter":
			if s.focused < len(s.inputs)-1 {
				return s.cycleFocus(false)
			}
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *ApplyScreen) cycleFocus(backward bool) (screen.Screen, tea.Cmd) {
	s.inputs[s.focused].Model.Blur()
	if backward {
		s.focused = (s.focused + len(s.inputs) - 1) % len(s.inputs)
	} else {
		s.focused = (s.focused + 1) % len(s.inputs)
	}
	return s, s.inputs[s.focused].Model.Focus()
}

// submit validates the form, opens the session, and moves to the battery.
func (s *ApplyScreen) submit() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(s.inputs[0].Value())
	user := assessment.UserInfo{
		Name:  name,
		Grade: strings.TrimSpace(s.inputs[1].Value()),
		Phone: strings.TrimSpace(s.inputs[2].Value()),
		Code:  assessment.NewUniqueCode(name),
	}
	if err := user.Validate(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	session := assessment.NewSession()
	if err := session.Begin(user); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	_ = s.eventRepo.AppendAssessment(context.Background(), store.AssessmentEventData{
		SessionID:      session.ID,
		Action:         "started",
		ApplicantName:  user.Name,
		ApplicantGrade: user.Grade,
		ApplicantCode:  user.Code,
	})

	next := quiz.New(session, s.reportSvc, s.genName, s.eventRepo)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ApplyScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("응시자 정보를 입력하세요"))
	b.WriteString("\n\n")

	for i, label := range fieldLabels {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.focused {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	submit := components.NewButton("제출하고 시작", s.focused == len(s.inputs)-1, nil)
	b.WriteString(submit.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("제출하면 고유 코드가 발급되고 검사가 시작됩니다."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}
