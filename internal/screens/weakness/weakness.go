// Package weakness lists the number pairs the user struggles with.
package weakness

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

type weaknessLoadedMsg struct {
	Weaknesses []analytics.Weakness
	Err        error
}

// WeaknessScreen displays weak pairs across all operations.
type WeaknessScreen struct {
	analyzer *analytics.Analyzer

	weaknesses []analytics.Weakness
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*WeaknessScreen)(nil)
var _ screen.KeyHintProvider = (*WeaknessScreen)(nil)

func New(analyzer *analytics.Analyzer) *WeaknessScreen {
	return &WeaknessScreen{analyzer: analyzer}
}

func (s *WeaknessScreen) Init() tea.Cmd {
	return func() tea.Msg {
		// Mixed scope covers every basic operation at every digit count.
		weaknesses, err := s.analyzer.Analyze(context.Background(), engine.OpMixed, 0)
		return weaknessLoadedMsg{Weaknesses: weaknesses, Err: err}
	}
}

func (s *WeaknessScreen) Title() string {
	return "Weak Spots"
}

func (s *WeaknessScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WeaknessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case weaknessLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.weaknesses = msg.Weaknesses
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *WeaknessScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Looking for weak spots...")
	}
	if len(s.weaknesses) == 0 {
		return center.Foreground(theme.Success).
			Render("\n\n  No weak spots found. Keep it up!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render("Adaptive sessions sneak these back in until they stick."))
	b.WriteString("\n\n")

	for i, w := range s.weaknesses {
		pair := fmt.Sprintf("%d %s %d", w.Entry.Num1, w.Entry.Op.Symbol(), w.Entry.Num2)
		var detail string
		if w.Reason == "accuracy" {
			detail = fmt.Sprintf("%.0f%% over %d tries", w.Accuracy*100, w.Attempts)
		} else {
			detail = fmt.Sprintf("slow · %.1fs average", w.AvgTime)
		}
		line := fmt.Sprintf("%2d. %-12s %s", i+1, pair, detail)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if w.Reason == "accuracy" {
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
