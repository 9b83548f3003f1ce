package practice

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/router"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/screens/summary"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/prajwalk/mathsprint/internal/ui/components"
	"github.com/prajwalk/mathsprint/internal/ui/layout"
)

// PracticeScreen runs one practice session. The engine orchestrator owns
// all session semantics; this screen owns timers, input, and persistence.
type PracticeScreen struct {
	orch      *engine.Orchestrator
	cfg       engine.Config
	eventRepo store.EventRepo
	source    engine.WeaknessSource
	badges    *achievements.Service

	sessionID string
	input     components.TextInput
	feedback  *engine.ScoreResult
	showQuit  bool
	errMsg    string
	started   bool
	sound     bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.HeaderStatsProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given session configuration.
// sound enables the terminal bell on wrong answers.
func New(cfg engine.Config, eventRepo store.EventRepo, source engine.WeaknessSource, badges *achievements.Service, sound bool) *PracticeScreen {
	return &PracticeScreen{
		orch:      engine.NewOrchestrator(engine.NewGenerator(nil), engine.NewWeaknessSelector(), nil),
		cfg:       cfg,
		eventRepo: eventRepo,
		source:    source,
		badges:    badges,
		sessionID: uuid.New().String(),
		input:     newAnswerInput(),
		sound:     sound,
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Answer...", true, 12)
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

// HeaderStats feeds the live session counters into the header bar.
func (p *PracticeScreen) HeaderStats() (int, int) {
	c := p.orch.Counters()
	return c.CorrectCount, c.BestStreak
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.showQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case p.orch.Phase() == engine.PhasePaused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
		}
	case p.feedback != nil:
		return []layout.KeyHint{
			{Key: "Space", Description: "Next"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(p.startSession(), p.input.Init())
}

// startSession seeds the id counter from the stored log and generates the
// first question.
func (p *PracticeScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		lastID, err := p.eventRepo.LastAttemptID(context.Background())
		if err != nil {
			return startedMsg{Err: err}
		}
		if _, err := p.orch.Start(p.cfg, lastID, time.Now()); err != nil {
			return startedMsg{Err: err}
		}

		_ = p.eventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: p.sessionID,
			Action:    "start",
			Mode:      string(p.cfg.Mode),
			Operation: string(p.cfg.Operation),
			Digits:    p.cfg.Digits,
			Adaptive:  p.cfg.Adaptive,
		})
		return startedMsg{}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.started = true
		cmds := []tea.Cmd{clockTick()}
		if p.cfg.Adaptive {
			cmds = append(cmds, p.refreshWeaknesses())
		}
		return p, tea.Batch(cmds...)

	case weaknessPoolMsg:
		// Fetch failures leave the pool empty; generation falls back to
		// normal synthesis.
		if msg.Err == nil {
			p.orch.Selector().SetPool(msg.Op, msg.Digits, msg.Entries)
		}
		return p, nil

	case advanceTimerMsg:
		if msg.Seq != p.orch.Seq() || p.orch.Phase() != engine.PhaseRunning {
			return p, nil
		}
		return p.advance()

	case clockTickMsg:
		if p.orch.Phase() == engine.PhaseStopped || p.errMsg != "" {
			return p, nil
		}
		// Sprint sessions end when time runs out between questions.
		if p.cfg.Mode == engine.ModeSprint && p.orch.Phase() == engine.PhaseRunning &&
			p.feedback == nil && p.sprintExpired() {
			return p.finish()
		}
		return p, clockTick()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.acceptingInput() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) acceptingInput() bool {
	return p.started && p.errMsg == "" && !p.showQuit && p.feedback == nil &&
		p.orch.Phase() == engine.PhaseRunning && p.orch.Current() != nil
}

func (p *PracticeScreen) sprintExpired() bool {
	return p.orch.Elapsed(time.Now()) >= time.Duration(p.cfg.Target)*time.Second
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !p.started {
		return p, nil
	}

	if p.showQuit {
		switch key {
		case "y", "Y":
			p.showQuit = false
			return p.finish()
		case "n", "N", "esc":
			p.showQuit = false
			_ = p.orch.Resume(time.Now())
			return p, nil
		}
		return p, nil
	}

	if p.orch.Phase() == engine.PhasePaused {
		if key == "p" || key == "P" {
			_ = p.orch.Resume(time.Now())
		}
		return p, nil
	}

	// Feedback showing: space or enter skips the remaining delay.
	if p.feedback != nil {
		if key == "space" || key == " " || key == "enter" {
			return p.advance()
		}
		return p, nil
	}

	switch key {
	case "esc":
		// Pause the clock while the confirm dialog is up.
		_ = p.orch.Pause(time.Now())
		p.showQuit = true
		return p, nil
	case "p", "P":
		_ = p.orch.Pause(time.Now())
		return p, nil
	case "enter":
		return p.submit()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submit scores the current answer, persists the attempt, and schedules
// the auto-advance timer.
func (p *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	raw := p.input.Value()
	if raw == "" {
		return p, nil
	}

	res, err := p.orch.Submit(raw, time.Now())
	if err != nil {
		return p, nil
	}
	p.feedback = &res
	p.input.Submit(res.Correct)

	seq := p.orch.Seq()
	return p, tea.Batch(
		p.persistAttempt(res.Attempt),
		p.bell(res.Correct),
		tea.Tick(engine.AdvanceDelay(res.Correct), func(time.Time) tea.Msg {
			return advanceTimerMsg{Seq: seq}
		}),
	)
}

// advance clears feedback and installs the next question, or ends the
// session when the target is reached.
func (p *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	p.feedback = nil
	q := p.orch.Advance(time.Now())
	if q == nil {
		return p.finish()
	}
	p.input = newAnswerInput()
	return p, p.input.Init()
}

// finish stops the session, persists the end event, checks badges, and
// pushes the summary screen.
func (p *PracticeScreen) finish() (screen.Screen, tea.Cmd) {
	sum := p.orch.Stop(time.Now())
	p.feedback = nil

	ctx := context.Background()
	_ = p.eventRepo.AppendSession(ctx, store.SessionEventData{
		SessionID:    p.sessionID,
		Action:       "end",
		Mode:         string(sum.Config.Mode),
		Operation:    string(sum.Config.Operation),
		Digits:       sum.Config.Digits,
		Adaptive:     sum.Config.Adaptive,
		Questions:    sum.Questions,
		Correct:      sum.Correct,
		BestStreak:   sum.BestStreak,
		AvgTime:      sum.AvgTime,
		DurationSecs: int(sum.Duration.Seconds()),
	})

	var unlocked []achievements.Badge
	if p.badges != nil && sum.Questions > 0 {
		unlocked, _ = p.badges.CheckSession(ctx, sum, p.sessionID)
	}

	return p, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, unlocked)}
	}
}

// persistAttempt appends the scored attempt to the event log. Storage
// errors never interrupt the session.
func (p *PracticeScreen) persistAttempt(a engine.Attempt) tea.Cmd {
	sessionID := p.sessionID
	repo := p.eventRepo
	target := false
	if q := p.orch.Current(); q != nil {
		target = q.WeaknessTarget
	}
	return func() tea.Msg {
		_ = repo.AppendAttempt(context.Background(), store.AttemptEventData{
			AttemptID:      a.ID,
			SessionID:      sessionID,
			Operation:      string(a.Operation),
			Digits:         a.Digits,
			Question:       a.Question,
			Num1:           a.Num1,
			Num2:           a.Num2,
			UserAnswer:     a.UserAnswer,
			CorrectAnswer:  a.CorrectAnswer,
			Correct:        a.Correct,
			TimeTaken:      a.TimeTaken,
			WeaknessTarget: target,
		})
		return nil
	}
}

// refreshWeaknesses fetches the weak-pair pool off the update loop. It
// runs once at session start; the pool stays fixed for the session.
func (p *PracticeScreen) refreshWeaknesses() tea.Cmd {
	source := p.source
	op := p.cfg.Operation
	digits := p.cfg.Digits
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := source.Weaknesses(context.Background(), op, digits)
		return weaknessPoolMsg{Op: op, Digits: digits, Entries: entries, Err: err}
	}
}

// bell rings the terminal bell on a wrong answer when sound is enabled.
func (p *PracticeScreen) bell(correct bool) tea.Cmd {
	if correct || !p.sound {
		return nil
	}
	return func() tea.Msg {
		fmt.Print("\a")
		return nil
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
