// Package badges shows the achievement cabinet.
package badges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

// BadgesScreen lists every badge and its unlock state.
type BadgesScreen struct {
	statuses []achievements.Status
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

func New(svc *achievements.Service) *BadgesScreen {
	return &BadgesScreen{statuses: svc.All()}
}

func (s *BadgesScreen) Init() tea.Cmd {
	return nil
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *BadgesScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var unlocked int
	for _, st := range s.statuses {
		if st.Unlocked {
			unlocked++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(s.statuses))))
	b.WriteString("\n\n")

	for _, st := range s.statuses {
		icon := "🔒"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if st.Unlocked {
			icon = "🏅"
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		line := fmt.Sprintf("%s %-12s %s", icon, st.Name, st.Desc)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
