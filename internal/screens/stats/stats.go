// Package stats shows lifetime performance: the per-skill breakdown,
// recent daily activity, and the coach's pick for what to practice next.
package stats

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/prajwalk/mathsprint/internal/ui/components"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

type statsLoadedMsg struct {
	Cells []analytics.SkillCell
	Daily []store.DailyRow
	Rec   analytics.Recommendation
	Total int
	Err   error
}

// StatsScreen displays aggregate performance.
type StatsScreen struct {
	eventRepo store.EventRepo
	coach     *analytics.Coach
	days      int

	cells  []analytics.SkillCell
	daily  []store.DailyRow
	rec    analytics.Recommendation
	total  int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen. days controls the daily activity window.
func New(eventRepo store.EventRepo, coach *analytics.Coach, days int) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo, coach: coach, days: days}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		cells, err := s.coach.Grid(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		total, err := s.eventRepo.TotalAttempts(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		daily, err := s.eventRepo.DailyStats(ctx, s.days)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		rec, err := s.coach.Recommend(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Cells: cells, Daily: daily, Rec: rec, Total: total}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.cells = msg.Cells
			s.daily = msg.Daily
			s.rec = msg.Rec
			s.total = msg.Total
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

func (s *StatsScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Crunching numbers...")
	}
	if s.total == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d attempts on record", s.total)))
	b.WriteString("\n\n")

	// Coach recommendation.
	recLine := fmt.Sprintf("Coach: practice %s %dd · %s",
		s.rec.Operation, s.rec.Digits, s.rec.Reason)
	b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(recLine))
	b.WriteString("\n\n")

	// Skill grid: one line per practiced cell, accuracy as a bar.
	b.WriteString(center.Foreground(theme.TextDim).Render("Skills"))
	b.WriteString("\n\n")
	barWidth := min(width-46, 24)
	for _, cell := range s.cells {
		if cell.Count == 0 {
			continue
		}
		bar := components.NewProgressBar("", cell.Accuracy/100, false, barWidth)
		line := fmt.Sprintf("%-14s %dd  %s %5.1f%%  %5.1fs  %-10s",
			cell.Operation, cell.Digits, bar.View(), cell.Accuracy, cell.AvgTime, cell.Level)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(levelColor(cell.Level)).Render(line)))
		b.WriteString("\n")
	}

	// Daily activity.
	if len(s.daily) > 0 {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Last %d days", s.days)))
		b.WriteString("\n\n")
		for _, d := range s.daily {
			var acc float64
			if d.Count > 0 {
				acc = float64(d.Correct) / float64(d.Count) * 100
			}
			line := fmt.Sprintf("%s  %4d questions  %5.1f%%  %5.1fs avg",
				d.Date, d.Count, acc, d.AvgTime)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func levelColor(level analytics.MasteryLevel) color.Color {
	switch level {
	case analytics.LevelMaster:
		return theme.Accent
	case analytics.LevelPro:
		return theme.Success
	case analytics.LevelApprentice:
		return theme.Error
	default:
		return theme.TextDim
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
