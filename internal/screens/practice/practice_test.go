package practice

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/screen"
	"github.com/prajwalk/mathsprint/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	lastID        int64
	attempts      []store.AttemptEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAchievement(_ context.Context, _ store.AchievementEventData) error {
	return nil
}
func (m *mockEventRepo) LastAttemptID(_ context.Context) (int64, error) {
	return m.lastID, nil
}
func (m *mockEventRepo) ListSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ListAttempts(_ context.Context, _ store.AttemptFilter) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) UnlockedAchievements(_ context.Context) (map[string]bool, error) {
	return map[string]bool{}, nil
}
func (m *mockEventRepo) TotalAttempts(_ context.Context) (int, error) {
	return len(m.attempts), nil
}
func (m *mockEventRepo) PerformanceBreakdown(_ context.Context) ([]store.BreakdownRow, error) {
	return nil, nil
}
func (m *mockEventRepo) DailyStats(_ context.Context, _ int) ([]store.DailyRow, error) {
	return nil, nil
}

// staticSource always returns the same pool.
type staticSource struct {
	entries []engine.WeaknessEntry
}

func (s *staticSource) Weaknesses(_ context.Context, _ engine.Operation, _ int) ([]engine.WeaknessEntry, error) {
	return s.entries, nil
}

// countingSource records how many pool fetches are issued.
type countingSource struct {
	calls int
}

func (s *countingSource) Weaknesses(_ context.Context, _ engine.Operation, _ int) ([]engine.WeaknessEntry, error) {
	s.calls++
	return nil, nil
}

// runCmd executes a command tree, unwrapping batches. Resulting messages
// are discarded.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func drillConfig() engine.Config {
	return engine.Config{
		Operation: engine.OpAddition,
		Digits:    1,
		Mode:      engine.ModeDrill,
		Target:    3,
	}
}

// startedScreen builds a practice screen and runs the start command
// synchronously so a live question is installed.
func startedScreen(t *testing.T, cfg engine.Config) (*PracticeScreen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	p := New(cfg, repo, &staticSource{}, nil, false)

	msg := p.startSession()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("start returned %T, want startedMsg", msg)
	}
	if started.Err != nil {
		t.Fatalf("start: %v", started.Err)
	}
	scr, _ := p.Update(started)
	return scr.(*PracticeScreen), repo
}

// typeAnswer enters the correct answer for the live question.
func typeAnswer(t *testing.T, p *PracticeScreen) {
	t.Helper()
	q := p.orch.Current()
	if q == nil {
		t.Fatal("no live question")
	}
	p.input.Model.SetValue(formatAnswer(q.Answer))
}

func TestPracticeScreen_Title(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())
	if p.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", p.Title(), "Practice")
	}
}

func TestPracticeScreen_StartPersistsSessionEvent(t *testing.T) {
	_, repo := startedScreen(t, drillConfig())

	if len(repo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(repo.sessionEvents))
	}
	ev := repo.sessionEvents[0]
	if ev.Action != "start" {
		t.Errorf("action = %q, want start", ev.Action)
	}
	if ev.Mode != string(engine.ModeDrill) {
		t.Errorf("mode = %q, want drill", ev.Mode)
	}
}

func TestPracticeScreen_SubmitShowsFeedback(t *testing.T) {
	p, repo := startedScreen(t, drillConfig())
	typeAnswer(t, p)

	scr, cmd := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PracticeScreen)

	if p.feedback == nil {
		t.Fatal("expected feedback after submit")
	}
	if !p.feedback.Correct {
		t.Error("expected correct answer")
	}
	if cmd == nil {
		t.Fatal("expected persist and timer commands")
	}

	// Run the persist command directly; the batch wrapper also carries the
	// advance timer, which sleeps.
	p.persistAttempt(p.orch.Attempts()[0])()
	if len(repo.attempts) != 1 {
		t.Fatalf("persisted attempts = %d, want 1", len(repo.attempts))
	}
	if repo.attempts[0].Correct != true {
		t.Error("persisted attempt not marked correct")
	}
	if repo.attempts[0].SessionID == "" {
		t.Error("persisted attempt missing session id")
	}
}

func TestPracticeScreen_EmptySubmitIgnored(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())

	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PracticeScreen)
	if p.feedback != nil {
		t.Error("empty submit should not score")
	}
}

func TestPracticeScreen_SpaceSkipsFeedbackDelay(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())
	typeAnswer(t, p)

	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PracticeScreen)
	firstID := p.orch.Attempts()[0].ID

	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PracticeScreen)

	if p.feedback != nil {
		t.Error("expected feedback cleared after space")
	}
	q := p.orch.Current()
	if q == nil {
		t.Fatal("expected next question")
	}
	if q.ID != firstID+1 {
		t.Errorf("next question id = %d, want %d", q.ID, firstID+1)
	}
}

func TestPracticeScreen_StaleAdvanceTimerDropped(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())
	typeAnswer(t, p)

	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PracticeScreen)
	staleSeq := p.orch.Seq()

	// User skips ahead before the timer fires.
	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PracticeScreen)
	liveID := p.orch.Current().ID

	// The old timer arrives late and must not advance again.
	scr, _ = p.Update(advanceTimerMsg{Seq: staleSeq})
	p = scr.(*PracticeScreen)

	if p.orch.Current() == nil || p.orch.Current().ID != liveID {
		t.Error("stale timer advanced the session")
	}
}

func TestPracticeScreen_DrillEndsAtTarget(t *testing.T) {
	p, repo := startedScreen(t, drillConfig())

	var scr screen.Screen = p
	for i := 0; i < 3; i++ {
		typeAnswer(t, p)
		scr, _ = p.Update(specialKey(tea.KeyEnter))
		p = scr.(*PracticeScreen)
		scr, _ = p.Update(keyPress(' '))
		p = scr.(*PracticeScreen)
	}

	if p.orch.Phase() != engine.PhaseStopped {
		t.Errorf("phase = %v, want stopped", p.orch.Phase())
	}

	var endEvents int
	for _, ev := range repo.sessionEvents {
		if ev.Action == "end" {
			endEvents++
			if ev.Questions != 3 {
				t.Errorf("end event questions = %d, want 3", ev.Questions)
			}
		}
	}
	if endEvents != 1 {
		t.Errorf("end events = %d, want 1", endEvents)
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())

	scr, _ := p.Update(specialKey(tea.KeyEscape))
	p = scr.(*PracticeScreen)
	if !p.showQuit {
		t.Fatal("expected quit confirmation")
	}
	if p.orch.Phase() != engine.PhasePaused {
		t.Error("expected clock paused during confirmation")
	}

	scr, _ = p.Update(keyPress('n'))
	p = scr.(*PracticeScreen)
	if p.showQuit {
		t.Error("expected confirmation dismissed")
	}
	if p.orch.Phase() != engine.PhaseRunning {
		t.Error("expected clock resumed")
	}
}

func TestPracticeScreen_QuitConfirmYesEndsSession(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())

	scr, _ := p.Update(specialKey(tea.KeyEscape))
	p = scr.(*PracticeScreen)
	scr, cmd := p.Update(keyPress('y'))
	p = scr.(*PracticeScreen)

	if p.orch.Phase() != engine.PhaseStopped {
		t.Errorf("phase = %v, want stopped", p.orch.Phase())
	}
	if cmd == nil {
		t.Error("expected summary push command")
	}
}

func TestPracticeScreen_PauseResume(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())

	scr, _ := p.Update(keyPress('p'))
	p = scr.(*PracticeScreen)
	if p.orch.Phase() != engine.PhasePaused {
		t.Fatal("expected paused phase")
	}

	// Typing while paused must not reach the input.
	scr, _ = p.Update(keyPress('5'))
	p = scr.(*PracticeScreen)
	if p.input.Value() != "" {
		t.Errorf("input = %q, want empty while paused", p.input.Value())
	}

	scr, _ = p.Update(keyPress('p'))
	p = scr.(*PracticeScreen)
	if p.orch.Phase() != engine.PhaseRunning {
		t.Error("expected running after resume")
	}
}

func TestPracticeScreen_WeaknessPoolDelivery(t *testing.T) {
	cfg := drillConfig()
	cfg.Adaptive = true
	p, _ := startedScreen(t, cfg)

	entries := []engine.WeaknessEntry{{Op: engine.OpAddition, Num1: 7, Num2: 8}}
	scr, _ := p.Update(weaknessPoolMsg{Op: cfg.Operation, Digits: cfg.Digits, Entries: entries})
	p = scr.(*PracticeScreen)

	pool := p.orch.Selector().Pool()
	if len(pool) != 1 || pool[0].Num1 != 7 {
		t.Errorf("pool = %v, want the delivered entry", pool)
	}
}

func TestPracticeScreen_WeaknessPoolFetchedOnceAtStart(t *testing.T) {
	cfg := drillConfig()
	cfg.Adaptive = true
	source := &countingSource{}
	repo := &mockEventRepo{}
	p := New(cfg, repo, source, nil, false)

	msg := p.startSession()()
	scr, cmd := p.Update(msg)
	p = scr.(*PracticeScreen)
	runCmd(cmd)
	if source.calls != 1 {
		t.Fatalf("fetches after start = %d, want 1", source.calls)
	}

	// Answering must not schedule another fetch; the pool is fixed for
	// the whole session.
	typeAnswer(t, p)
	scr, cmd = p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PracticeScreen)
	runCmd(cmd)
	if source.calls != 1 {
		t.Errorf("fetches after submit = %d, want 1", source.calls)
	}
}

func TestPracticeScreen_WeaknessPoolErrorIgnored(t *testing.T) {
	cfg := drillConfig()
	cfg.Adaptive = true
	p, _ := startedScreen(t, cfg)

	scr, _ := p.Update(weaknessPoolMsg{Op: cfg.Operation, Digits: cfg.Digits, Err: fmt.Errorf("db closed")})
	p = scr.(*PracticeScreen)

	if len(p.orch.Selector().Pool()) != 0 {
		t.Error("expected pool unchanged on fetch error")
	}
}

func TestPracticeScreen_ViewStates(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())

	view := p.View(80, 24)
	if !strings.Contains(view, "= ?") {
		t.Error("expected question display in view")
	}

	typeAnswer(t, p)
	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PracticeScreen)
	if !strings.Contains(p.View(80, 24), "Correct!") {
		t.Error("expected feedback view after correct answer")
	}

	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PracticeScreen)
	scr, _ = p.Update(keyPress('p'))
	p = scr.(*PracticeScreen)
	if !strings.Contains(strings.ToLower(p.View(80, 24)), "paused") {
		t.Error("expected paused view")
	}
}

func TestPracticeScreen_BellFollowsSoundSetting(t *testing.T) {
	repo := &mockEventRepo{}

	noisy := New(drillConfig(), repo, &staticSource{}, nil, true)
	if noisy.bell(false) == nil {
		t.Error("expected a bell command for a wrong answer with sound on")
	}
	if noisy.bell(true) != nil {
		t.Error("expected no bell for a correct answer")
	}

	muted := New(drillConfig(), repo, &staticSource{}, nil, false)
	if muted.bell(false) != nil {
		t.Error("expected no bell with sound off")
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	p, _ := startedScreen(t, drillConfig())
	if len(p.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	scr, _ := p.Update(specialKey(tea.KeyEscape))
	p = scr.(*PracticeScreen)
	hints := p.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit-confirm hints = %d, want 2", len(hints))
	}
}
