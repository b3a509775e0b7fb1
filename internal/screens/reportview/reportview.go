package reportview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/assessment"
	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/report"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/screens/tiers"
	"github.com/sgslabs/sgsdiag/internal/ui/components"
	"github.com/sgslabs/sgsdiag/internal/ui/layout"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

// ReportScreen shows the scored outcome of a completed diagnostic: the tier
// card, per-category bars, and the parsed narrative. The narrative scrolls
// with an offset into the rendered lines.
type ReportScreen struct {
	user   assessment.UserInfo
	result assessment.Result
	blocks []report.Block
	offset int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report screen from a completed session's outcome. The raw
// narrative is parsed here so callers hand over plain text.
func New(user assessment.UserInfo, result assessment.Result, reportText string) *ReportScreen {
	return &ReportScreen{
		user:   user,
		result: result,
		blocks: report.Parse(reportText),
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "진단 결과"
}

// ApplicantCode exposes the applicant's unique code for the header.
func (s *ReportScreen) ApplicantCode() string {
	return s.user.Code
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "T", Description: "등급표"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset -= 10
		if s.offset < 0 {
			s.offset = 0
		}
	case "pgdown":
		s.offset += 10
	case "t", "T":
		pai := s.result.PAI
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: tiers.NewWithScore(pai)}
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, s.renderTierCard(width))
	sections = append(sections, s.renderCategoryBars(width))
	sections = append(sections, s.renderNarrative(width))

	all := strings.Join(sections, "\n")
	lines := strings.Split(all, "\n")

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}

	end := s.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.offset:end], "\n")
}

// renderTierCard renders the applicant line, PAI, and resolved grade.
func (s *ReportScreen) renderTierCard(width int) string {
	var b strings.Builder

	who := fmt.Sprintf("%s (%s)  %s", s.user.Name, s.user.Grade, s.user.Code)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(who))
	b.WriteString("\n\n")

	paiLine := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("PAI %d점", s.result.PAI))

	if tier, ok := catalog.ResolveTier(s.result.PAI); ok {
		paiLine += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("   %s · %s", tier.Grade, tier.Name))
		b.WriteString(paiLine)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("목표권: " + strings.Join(tier.Universities, ", ")))
	} else {
		b.WriteString(paiLine)
	}

	card := theme.Card.Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderCategoryBars renders one progress bar per category, catalog order.
func (s *ReportScreen) renderCategoryBars(width int) string {
	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 20 {
		barWidth = 20
	}

	var b strings.Builder
	for _, cat := range catalog.Categories() {
		score := s.result.Categories[cat.ID]
		bar := components.NewProgressBar(
			fmt.Sprintf("%-4s", cat.ID), score/100, true, barWidth)
		line := bar.View() + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(cat.Name)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderNarrative renders the parsed blocks with per-type styling.
func (s *ReportScreen) renderNarrative(width int) string {
	textWidth := width - 8
	if textWidth > 80 {
		textWidth = 80
	}
	if textWidth < 20 {
		textWidth = 20
	}
	wrap := lipgloss.NewStyle().Width(textWidth)

	var b strings.Builder
	for _, blk := range s.blocks {
		var rendered string
		switch blk := blk.(type) {
		case report.MajorSection:
			rendered = "\n" + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(blk.Heading)
		case report.SubSection:
			rendered = "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(blk.Heading)
		case report.LabeledParagraph:
			rendered = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(blk.Label+" ") +
				wrap.Foreground(theme.Text).Render(blk.Body)
		case report.FutureScenario:
			inner := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⚡ "+blk.Headline)
			for _, line := range blk.Body {
				inner += "\n" + wrap.Foreground(theme.Text).Render(line)
			}
			rendered = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Accent).
				Padding(0, 1).
				Render(inner)
		case report.StatusBanner:
			rendered = lipgloss.NewStyle().
				Background(theme.BgCard).
				Foreground(theme.Secondary).
				Bold(true).
				Padding(0, 1).
				Render(blk.Text)
		case report.Callout:
			rendered = lipgloss.NewStyle().Foreground(theme.Accent).
				Render("▶ " + blk.Text)
		case report.PlainParagraph:
			rendered = wrap.Foreground(theme.Text).Render(blk.Text)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
		b.WriteString("\n")
	}
	return b.String()
}
