package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

// Block-letter banner.
const bannerFull = ` ███████╗██████╗ ██████╗ ██╗███╗   ██╗████████╗
 ██╔════╝██╔══██╗██╔══██╗██║████╗  ██║╚══██╔══╝
 ███████╗██████╔╝██████╔╝██║██╔██╗ ██║   ██║
 ╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║   ██║
 ███████║██║     ██║  ██║██║██║ ╚████║   ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝`

const bannerCompact = "M A T H S P R I N T"

// contentWidth returns the uniform inner width used for all sections so
// the boxes line up.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(bannerCompact))
	}
	kicker := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("M A T H")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(kicker + "\n" + style.Render(bannerFull))
}

// renderStatsBar shows lifetime totals in a double-border box.
func renderStatsBar(solved, accuracyPct, badges, cw int, compact bool) string {
	solvedStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			solvedStyle.Render(fmt.Sprintf("Σ%d", solved)),
			accStyle.Render(fmt.Sprintf("◎%d%%", accuracyPct)),
			badgeStyle.Render(fmt.Sprintf("🏅%d", badges)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			solvedStyle.Render(fmt.Sprintf("Σ %d SOLVED", solved)),
			accStyle.Render(fmt.Sprintf("◎ %d%% ACCURACY", accuracyPct)),
			badgeStyle.Render(fmt.Sprintf("🏅 %d BADGES", badges)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderCoachLine shows the coach's practice recommendation.
func renderCoachLine(rec string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("Coach: " + rec)
}

const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available", latestVersion))
}

// renderFrame wraps content in a double-border frame, centered both ways.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
