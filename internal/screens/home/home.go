// Package home is the landing screen: banner, lifetime stats, the
// coach's suggestion, and the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/screens/badges"
	"github.com/prajwalk/mathsprint/internal/screens/history"
	"github.com/prajwalk/mathsprint/internal/screens/setup"
	"github.com/prajwalk/mathsprint/internal/screens/stats"
	"github.com/prajwalk/mathsprint/internal/screens/weakness"
	"github.com/prajwalk/mathsprint/internal/selfupdate"
	"github.com/prajwalk/mathsprint/internal/settings"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/prajwalk/mathsprint/internal/ui/components"
)

type homeLoadedMsg struct {
	Solved      int
	AccuracyPct int
	CoachLine   string
}

type updateAvailableMsg struct {
	LatestVersion string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	eventRepo store.EventRepo
	coach     *analytics.Coach
	badgeSvc  *achievements.Service
	checker   *selfupdate.Checker
	version   string

	menu       components.Menu
	menuLabels []string

	solved        int
	accuracyPct   int
	coachLine     string
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. checker may be nil to skip the update check.
func New(eventRepo store.EventRepo, analyzer *analytics.Analyzer, coach *analytics.Coach, badgeSvc *achievements.Service, cfg settings.Settings, checker *selfupdate.Checker, version string) *HomeScreen {
	menuLabels := []string{"PRACTICE", "STATS", "WEAK SPOTS", "HISTORY", "BADGES", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(eventRepo, analyzer, badgeSvc, cfg.AdaptiveDifficulty, cfg.Sound),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eventRepo, coach, cfg.StatsDays)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: weakness.New(analyzer)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badges.New(badgeSvc)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		eventRepo:  eventRepo,
		coach:      coach,
		badgeSvc:   badgeSvc,
		checker:    checker,
		version:    version,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{h.loadStats()}
	if h.checker != nil {
		cmds = append(cmds, h.checkUpdate())
	}
	return tea.Batch(cmds...)
}

// loadStats gathers lifetime totals and the coach's pick off the Update loop.
func (h *HomeScreen) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var msg homeLoadedMsg
		rows, err := h.eventRepo.PerformanceBreakdown(ctx)
		if err != nil {
			return msg
		}
		var correct int
		for _, row := range rows {
			msg.Solved += row.Count
			correct += row.Correct
		}
		if msg.Solved > 0 {
			msg.AccuracyPct = correct * 100 / msg.Solved

			rec, err := h.coach.Recommend(ctx)
			if err == nil {
				msg.CoachLine = rec.Reason
			}
		}
		return msg
	}
}

func (h *HomeScreen) checkUpdate() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result, err := h.checker.Check(ctx, &selfupdate.CheckInput{Version: h.version})
		if err != nil || !result.UpdateAvailable {
			return nil
		}
		return updateAvailableMsg{LatestVersion: result.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		h.solved = msg.Solved
		h.accuracyPct = msg.AccuracyPct
		h.coachLine = msg.CoachLine
		return h, nil

	case updateAvailableMsg:
		h.latestVersion = msg.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderBanner(cw, compact))

	badgeCount := 0
	for _, st := range h.badgeSvc.All() {
		if st.Unlocked {
			badgeCount++
		}
	}
	sections = append(sections, renderStatsBar(h.solved, h.accuracyPct, badgeCount, cw, compact))

	if h.coachLine != "" && !compact {
		sections = append(sections, renderCoachLine(h.coachLine, cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
