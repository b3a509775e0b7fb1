package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sgslabs/sgsdiag/internal/ui/theme"
)

// LikertLabels are the five answer options, index = raw score.
var LikertLabels = []string{
	"전혀 그렇지 않다",
	"그렇지 않다",
	"보통이다",
	"그렇다",
	"매우 그렇다",
}

// Likert is a five-point answer selector for a single statement.
type Likert struct {
	Statement string
	Selected  int
	Submitted bool
}

// NewLikert creates a Likert selector with the cursor on the middle option.
func NewLikert(statement string) Likert {
	return Likert{
		Statement: statement,
		Selected:  2,
	}
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys 1-5 jump
// straight to an option.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	if l.Submitted {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(LikertLabels)-1 {
			l.Selected++
		}
	case "1", "2", "3", "4", "5":
		l.Selected = int(key[0] - '1')
	case "enter":
		l.Submitted = true
	}

	return l, nil
}

// View renders the statement and answer options.
func (l Likert) View() string {
	statementStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := statementStyle.Render(l.Statement) + "\n\n"

	for i, label := range LikertLabels {
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, label)

		if i == l.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Value returns the raw score for the selected option.
func (l Likert) Value() int {
	return l.Selected
}
