package practice

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return renderError(width, p.errMsg)
	case !p.started:
		return renderLoading(width)
	case p.showQuit:
		return renderQuitConfirm(width)
	case p.orch.Phase() == engine.PhasePaused:
		return renderPaused(width)
	case p.feedback != nil:
		return p.renderFeedback(width)
	default:
		return p.renderQuestion(width)
	}
}

// renderQuestion shows the live question with the session status line.
func (p *PracticeScreen) renderQuestion(width int) string {
	q := p.orch.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Generating question...")
	}

	var b strings.Builder
	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Display + " = ?")
	b.WriteString(question)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View()))

	if q.WeaknessTarget {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("◎ targeting a weak spot"))
	}

	return b.String()
}

// renderStatusLine shows progress, streak, level, and the session timer.
func (p *PracticeScreen) renderStatusLine(width int) string {
	c := p.orch.Counters()
	now := time.Now()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + modeLabel(p.cfg))

	parts := []string{fmt.Sprintf("Q %d", c.QuestionCount+1)}
	if p.cfg.Mode == engine.ModeDrill {
		parts[0] = fmt.Sprintf("Q %d/%d", c.QuestionCount+1, p.cfg.Target)
	}
	parts = append(parts, fmt.Sprintf("✔ %d", c.CorrectCount))
	if c.Streak > 1 {
		parts = append(parts, fmt.Sprintf("★ %d", c.Streak))
	}
	if p.cfg.Adaptive {
		parts = append(parts, fmt.Sprintf("Lv %d", p.orch.Adaptive().Level))
	}
	parts = append(parts, clockLabel(p.cfg, p.orch.Elapsed(now)))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "  "))

	line := left
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return line
}

func modeLabel(cfg engine.Config) string {
	op := opLabel(cfg.Operation)
	switch cfg.Mode {
	case engine.ModeDrill:
		return fmt.Sprintf("%s · Drill", op)
	case engine.ModeSprint:
		return fmt.Sprintf("%s · Sprint", op)
	default:
		return fmt.Sprintf("%s · Endless", op)
	}
}

func opLabel(op engine.Operation) string {
	switch op {
	case engine.OpMixed:
		return "Mixed"
	case engine.OpComplex:
		return "Complex"
	default:
		return strings.ToUpper(string(op[0])) + string(op[1:])
	}
}

// clockLabel counts up normally, down for sprints.
func clockLabel(cfg engine.Config, elapsed time.Duration) string {
	d := elapsed
	if cfg.Mode == engine.ModeSprint {
		d = time.Duration(cfg.Target)*time.Second - elapsed
		if d < 0 {
			d = 0
		}
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// renderFeedback shows the outcome overlay between questions.
func (p *PracticeScreen) renderFeedback(width int) string {
	res := p.feedback

	var b strings.Builder
	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(res.Attempt.Question + " = ?"))
	b.WriteString("\n\n")

	if res.Correct {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", formatAnswer(res.Attempt.CorrectAnswer))))
	}

	if res.Milestone > 0 {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("🔥 %d in a row!", res.Milestone)))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Space to continue"))
	return b.String()
}

// formatAnswer trims trailing zeros so whole numbers print bare.
func formatAnswer(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func renderPaused(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return "\n\n\n" +
		center.Foreground(theme.Text).Bold(true).Render("Paused") + "\n\n" +
		center.Foreground(theme.TextDim).Render("The clock is stopped. Press P to resume.")
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return "\n\n\n" +
		center.Foreground(theme.Text).Bold(true).Render("End session early?") + "\n" +
		center.Foreground(theme.TextDim).Render("Your attempts so far are saved.") + "\n\n" +
		center.Foreground(theme.Success).Render("[Y] Yes, show my summary") + "\n" +
		center.Foreground(theme.Primary).Render("[N] No, keep going")
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Warming up...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
