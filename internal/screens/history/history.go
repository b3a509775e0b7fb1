package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/sgslabs/sgsdiag/internal/ui/layout"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.AssessmentRecord
	Err     error
}

// HistoryScreen displays past completed diagnostics.
type HistoryScreen struct {
	eventRepo store.EventRepo
	records   []store.AssessmentRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.CompletedAssessments(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "진단 기록"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  기록을 불러오는 중...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  아직 완료된 진단이 없습니다.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Timestamp.Format("2006-01-02 15:04")

		gradeStr := ""
		if tier, ok := catalog.ResolveTier(rec.PAI); ok {
			gradeStr = "  " + tier.Grade
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s (%s)  %s  PAI %d%s",
			prefix, dateStr, rec.ApplicantName, rec.ApplicantGrade, rec.ApplicantCode, rec.PAI, gradeStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, catLine := range categoryLines(rec.CategoryScores) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(catLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// categoryLines formats per-category scores in catalog order. Categories
// missing from the record are skipped.
func categoryLines(scores map[string]float64) []string {
	var lines []string
	known := make(map[string]bool)
	for _, cat := range catalog.Categories() {
		known[cat.ID] = true
		score, ok := scores[cat.ID]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("    %s (%s)  %.1f점", cat.Name, cat.ID, score))
	}

	// Anything outside the seeded catalog still shows, after the known ones.
	var extra []string
	for id, score := range scores {
		if !known[id] {
			extra = append(extra, fmt.Sprintf("    %s  %.1f점", id, score))
		}
	}
	sort.Strings(extra)
	return append(lines, extra...)
}
