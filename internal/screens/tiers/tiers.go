package tiers

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/ui/layout"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

// TiersScreen shows the full grade matrix with score bands and the
// university groups each band maps to. HighlightPAI, when >= 0, marks the
// row containing that score.
type TiersScreen struct {
	tiers        []catalog.TierEntry
	highlightPAI int
}

var _ screen.Screen = (*TiersScreen)(nil)
var _ screen.KeyHintProvider = (*TiersScreen)(nil)

// New creates the matrix screen without a highlighted row.
func New() *TiersScreen {
	return &TiersScreen{tiers: catalog.Tiers(), highlightPAI: -1}
}

// NewWithScore creates the matrix screen with the row containing pai marked.
func NewWithScore(pai int) *TiersScreen {
	return &TiersScreen{tiers: catalog.Tiers(), highlightPAI: pai}
}

func (s *TiersScreen) Init() tea.Cmd {
	return nil
}

func (s *TiersScreen) Title() string {
	return "등급 기준표"
}

func (s *TiersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TiersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *TiersScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-6s %-14s %-10s %s", "등급", "명칭", "PAI", "대학 그룹")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header)+4))))
	b.WriteString("\n")

	for _, tier := range s.tiers {
		band := fmt.Sprintf("%d~%d", tier.Low, tier.High)
		line := fmt.Sprintf("  %-6s %-14s %-10s %s",
			tier.Grade, tier.Name, band, strings.Join(tier.Universities, ", "))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.highlightPAI >= 0 && tier.Contains(s.highlightPAI) {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line = "▸" + line[1:]
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.highlightPAI >= 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render(fmt.Sprintf("현재 PAI %d점 기준", s.highlightPAI))))
		b.WriteString("\n")
	}

	return b.String()
}
