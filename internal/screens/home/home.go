package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/reportgen"
	"github.com/sgslabs/sgsdiag/internal/router"
	"github.com/sgslabs/sgsdiag/internal/screen"
	"github.com/sgslabs/sgsdiag/internal/screens/apply"
	"github.com/sgslabs/sgsdiag/internal/screens/history"
	"github.com/sgslabs/sgsdiag/internal/screens/tiers"
	"github.com/sgslabs/sgsdiag/internal/store"
	"github.com/sgslabs/sgsdiag/internal/ui/components"
	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

const titleArt = ` ███████╗ ██████╗ ███████╗
 ██╔════╝██╔════╝ ██╔════╝
 ███████╗██║  ███╗███████╗
 ╚════██║██║   ██║╚════██║
 ███████║╚██████╔╝███████║
 ╚══════╝ ╚═════╝ ╚══════╝`

const titleCompact = "S · G · S"

// HomeScreen is the main menu of the diagnostic.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(reportSvc *reportgen.Service, genName string, eventRepo store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "진단 시작", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: apply.New(reportSvc, genName, eventRepo)}
			}
		}},
		{Label: "등급 기준표", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tiers.New()}
			}
		}},
		{Label: "진단 기록", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "종료", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 100

	title := titleArt
	if compact {
		title = titleCompact
	}

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("잠재 학업 지수(PAI) 진단 시스템"))

	intro := lipgloss.NewStyle().Foreground(theme.Text).
		Render("48개 문항으로 6개 역량을 측정하고\nAI 분석 리포트와 등급을 제공합니다.")
	sections = append(sections, intro)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
