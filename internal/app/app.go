package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/screens/home"
	"github.com/prajwalk/mathsprint/internal/selfupdate"
	"github.com/prajwalk/mathsprint/internal/settings"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	EventRepo    store.EventRepo
	Analyzer     *analytics.Analyzer
	Coach        *analytics.Coach
	Achievements *achievements.Service
	Settings     settings.Settings

	// UpdateChecker is optional; nil skips the home-screen update check.
	UpdateChecker *selfupdate.Checker
	Version       string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.EventRepo, opts.Analyzer, opts.Coach,
		opts.Achievements, opts.Settings, opts.UpdateChecker, opts.Version)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var solved, bestStreak int
	if sp, ok := active.(screen.HeaderStatsProvider); ok {
		solved, bestStreak = sp.HeaderStats()
	}
	header := layout.RenderHeader(title, solved, bestStreak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
