package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/scoring"
	"github.com/sgslabs/sgsdiag/internal/ui/components"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirming {
		return renderQuitConfirm(width, height)
	}

	q, err := s.session.Current()
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  준비 중...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(s.notice)))
		b.WriteString("\n\n")
	}

	// Progress line.
	barWidth := width - 30
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 20 {
		barWidth = 20
	}
	progress := components.NewProgressBar(
		fmt.Sprintf("%d/%d", s.session.CurrentIndex+1, len(s.session.Questions)),
		float64(s.session.Progress())/100, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	// Category line for the current question.
	if cat, err := catalog.GetCategory(q.Category); err == nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(fmt.Sprintf("[%s] %s", cat.ID, cat.Name))))
		b.WriteString("\n\n")
	}

	// The statement and answer options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.likert.View()))
	b.WriteString("\n")

	// Running category preview from answers recorded so far.
	b.WriteString(s.renderPreview(width))

	return b.String()
}

// renderPreview shows the running category scores in a single dim line.
func (s *QuizScreen) renderPreview(width int) string {
	if len(s.session.Answers) == 0 {
		return ""
	}
	scores := scoring.ScoreCategories(s.session.Answers)

	parts := make([]string, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		parts = append(parts, fmt.Sprintf("%s %.0f", cat.ID, scores[cat.ID]))
	}
	line := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(strings.Join(parts, "  "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("진단을 중단할까요?") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("지금까지의 응답은 저장되지 않습니다.  [Y/N]"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
