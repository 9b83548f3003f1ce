// Package setup walks the user through session configuration: operation,
// digit count, mode, and adaptive difficulty.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/screens/practice"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
	"github.com/prajwalk/mathsprint/internal/ui/theme"
)

type step int

const (
	stepOperation step = iota
	stepDigits
	stepMode
	stepAdaptive
)

type choice struct {
	label string
	apply func(*engine.Config)
}

var operationChoices = []choice{
	{"Addition", func(c *engine.Config) { c.Operation = engine.OpAddition }},
	{"Subtraction", func(c *engine.Config) { c.Operation = engine.OpSubtraction }},
	{"Multiplication", func(c *engine.Config) { c.Operation = engine.OpMultiplication }},
	{"Division", func(c *engine.Config) { c.Operation = engine.OpDivision }},
	{"Mixed", func(c *engine.Config) { c.Operation = engine.OpMixed }},
	{"Complex", func(c *engine.Config) { c.Operation = engine.OpComplex }},
}

var digitChoices = []choice{
	{"1 digit", func(c *engine.Config) { c.Digits = 1 }},
	{"2 digits", func(c *engine.Config) { c.Digits = 2 }},
	{"3 digits", func(c *engine.Config) { c.Digits = 3 }},
}

var modeChoices = []choice{
	{"Endless · stop whenever", func(c *engine.Config) { c.Mode = engine.ModeEndless; c.Target = 0 }},
	{"Drill · 20 questions", func(c *engine.Config) { c.Mode = engine.ModeDrill; c.Target = 20 }},
	{"Drill · 50 questions", func(c *engine.Config) { c.Mode = engine.ModeDrill; c.Target = 50 }},
	{"Sprint · 60 seconds", func(c *engine.Config) { c.Mode = engine.ModeSprint; c.Target = 60 }},
	{"Sprint · 3 minutes", func(c *engine.Config) { c.Mode = engine.ModeSprint; c.Target = 180 }},
}

var adaptiveChoices = []choice{
	{"Adaptive · difficulty follows you", func(c *engine.Config) { c.Adaptive = true }},
	{"Fixed · medium difficulty throughout", func(c *engine.Config) { c.Adaptive = false }},
}

// SetupScreen collects a session configuration step by step.
type SetupScreen struct {
	eventRepo store.EventRepo
	source    engine.WeaknessSource
	badges    *achievements.Service

	cfg      engine.Config
	step     step
	selected int

	// defaultAdaptive preselects the adaptive choice from settings.
	defaultAdaptive bool

	// sound is passed through to the practice screen.
	sound bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen. defaultAdaptive and sound come from user
// settings.
func New(eventRepo store.EventRepo, source engine.WeaknessSource, badges *achievements.Service, defaultAdaptive, sound bool) *SetupScreen {
	return &SetupScreen{
		eventRepo:       eventRepo,
		source:          source,
		badges:          badges,
		defaultAdaptive: defaultAdaptive,
		sound:           sound,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) choices() []choice {
	switch s.step {
	case stepOperation:
		return operationChoices
	case stepDigits:
		return digitChoices
	case stepMode:
		return modeChoices
	default:
		return adaptiveChoices
	}
}

func (s *SetupScreen) stepTitle() string {
	switch s.step {
	case stepOperation:
		return "What do you want to practice?"
	case stepDigits:
		return "How many digits?"
	case stepMode:
		return "Session mode?"
	default:
		return "Difficulty?"
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	choices := s.choices()
	switch kmsg.String() {
	case "esc":
		if s.step == stepOperation {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.step--
		s.selected = 0
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(choices)-1 {
			s.selected++
		}
	case "enter":
		choices[s.selected].apply(&s.cfg)
		if s.step == stepAdaptive {
			cfg := s.cfg
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(cfg, s.eventRepo, s.source, s.badges, s.sound),
				}
			}
		}
		s.step++
		s.selected = 0
		if s.step == stepAdaptive && !s.defaultAdaptive {
			s.selected = 1
		}
	}
	return s, nil
}

func (s *SetupScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(s.stepTitle()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of 4", int(s.step)+1)))
	b.WriteString("\n\n")

	var menu strings.Builder
	for i, c := range s.choices() {
		if i == s.selected {
			menu.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + c.label))
		} else {
			menu.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + c.label))
		}
		menu.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu.String()))

	return b.String()
}
