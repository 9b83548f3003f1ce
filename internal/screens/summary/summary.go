package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

// SummaryScreen displays the final report of a finished session.
type SummaryScreen struct {
	summary engine.Summary
	badges  []achievements.Badge
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session, with any badges
// the session unlocked.
func New(summary engine.Summary, badges []achievements.Badge) *SummaryScreen {
	return &SummaryScreen{summary: summary, badges: badges}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both the summary and the finished practice screen.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Batch(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Active time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Questions, sum.Correct, sum.Accuracy*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")

	detailLine := fmt.Sprintf("Best streak: %d        Avg time: %.1fs", sum.BestStreak, sum.AvgTime)
	b.WriteString(center.Foreground(theme.Text).Render(detailLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Difficulty trajectory, adaptive sessions only.
	if sum.Config.Adaptive && len(sum.Levels) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("Difficulty"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Secondary).Render(levelPath(sum.Levels)))
		b.WriteString("\n\n")
	}

	if len(s.badges) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("New badges"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		for _, badge := range s.badges {
			line := fmt.Sprintf("  🏅 %s · %s", badge.Name, badge.Desc)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// levelPath renders the level transitions as "1 > 2 > 3".
func levelPath(changes []engine.LevelChange) string {
	parts := []string{"1"}
	for _, c := range changes {
		parts = append(parts, fmt.Sprintf("%d", c.Level))
	}
	return strings.Join(parts, " > ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
