package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseStopped
)

// Mode selects how a session ends.
type Mode string

const (
	// ModeEndless runs until the user stops.
	ModeEndless Mode = "endless"
	// ModeDrill runs for a fixed number of questions.
	ModeDrill Mode = "drill"
	// ModeSprint runs for a fixed active duration.
	ModeSprint Mode = "sprint"
)

// Auto-advance delays after feedback, unless the user skips the wait.
const (
	AdvanceDelayCorrect   = 800 * time.Millisecond
	AdvanceDelayIncorrect = 1200 * time.Millisecond
)

// Config is the session configuration fixed at start.
type Config struct {
	Operation Operation
	Digits    int
	Mode      Mode
	Target    int // drill: questions; sprint: seconds
	Adaptive  bool
}

func (c Config) validate() error {
	if !c.Operation.Valid() {
		return fmt.Errorf("unknown operation %q", c.Operation)
	}
	if c.Digits < MinDigits || c.Digits > MaxDigits {
		return fmt.Errorf("digits %d out of range [%d,%d]", c.Digits, MinDigits, MaxDigits)
	}
	switch c.Mode {
	case ModeEndless:
	case ModeDrill, ModeSprint:
		if c.Target <= 0 {
			return fmt.Errorf("mode %s requires a positive target", c.Mode)
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// Summary is the final report of a stopped session.
type Summary struct {
	Config     Config
	Questions  int
	Correct    int
	Accuracy   float64
	AvgTime    float64 // seconds per question
	BestStreak int
	Duration   time.Duration // active time, pauses excluded
	Levels     []LevelChange
	Attempts   []Attempt
}

// Orchestrator drives the practice loop: generate, await submission,
// score, advance. It is a pure state machine over an injected clock; the
// UI layer owns the actual timers and feeds time in.
type Orchestrator struct {
	gen      *Generator
	selector *WeaknessSelector
	scorer   *Scorer
	rng      *rand.Rand

	cfg   Config
	phase Phase

	current         *Question
	seq             int
	nextID          int64
	attempts        []Attempt
	awaitingAdvance bool

	startedAt     time.Time
	pausedAt      time.Time
	questionStart time.Time

	// pauseAccrued is per-question and reset on every question setup, so
	// timeTaken excludes only pauses within the current question.
	pauseAccrued time.Duration
}

// NewOrchestrator wires a generator and weakness selector. A nil rng falls
// back to a time-seeded source.
func NewOrchestrator(gen *Generator, selector *WeaknessSelector, rng *rand.Rand) *Orchestrator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1))
	}
	if selector == nil {
		selector = NewWeaknessSelector()
	}
	return &Orchestrator{
		gen:      gen,
		selector: selector,
		scorer:   NewScorer(),
		rng:      rng,
		phase:    PhaseIdle,
	}
}

// Start resets all session state and generates the first question. lastID
// seeds the question id counter so ids continue monotonically across
// sessions.
func (o *Orchestrator) Start(cfg Config, lastID int64, now time.Time) (*Question, error) {
	if o.phase == PhaseRunning || o.phase == PhasePaused {
		return nil, fmt.Errorf("session already running")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o.cfg = cfg
	o.phase = PhaseRunning
	o.scorer.Reset()
	o.selector.Scope(cfg.Operation, cfg.Digits)
	o.nextID = lastID
	o.attempts = nil
	o.seq = 0
	o.startedAt = now
	o.setupNextQuestion(now)
	return o.current, nil
}

// Selector exposes the weakness selector for async pool delivery.
func (o *Orchestrator) Selector() *WeaknessSelector {
	return o.selector
}

// setupNextQuestion generates and installs the next live question. Bumping
// seq here invalidates any auto-advance timer still in flight.
func (o *Orchestrator) setupNextQuestion(now time.Time) {
	o.seq++
	toughness := ToughnessMedium
	var pool []WeaknessEntry
	if o.cfg.Adaptive {
		toughness = o.scorer.Adaptive.NextToughness(o.rng)
		pool = o.selector.Pool()
	}

	q := o.gen.Generate(o.cfg.Operation, o.cfg.Digits, toughness, pool)
	o.nextID++
	q.ID = o.nextID

	o.current = &q
	o.questionStart = now
	o.pauseAccrued = 0
	o.awaitingAdvance = false
}

// Submit scores the live question against the raw answer. The question
// stays current for feedback display until Advance.
func (o *Orchestrator) Submit(raw string, now time.Time) (ScoreResult, error) {
	if o.phase != PhaseRunning {
		return ScoreResult{}, fmt.Errorf("no running session")
	}
	if o.current == nil || o.awaitingAdvance {
		return ScoreResult{}, fmt.Errorf("no live question")
	}

	elapsed := now.Sub(o.questionStart) - o.pauseAccrued
	res := o.scorer.Score(o.current, raw, elapsed, now)
	o.attempts = append(o.attempts, res.Attempt)
	o.awaitingAdvance = true
	return res, nil
}

// AdvanceDelay returns the feedback display duration for an outcome.
func AdvanceDelay(correct bool) time.Duration {
	if correct {
		return AdvanceDelayCorrect
	}
	return AdvanceDelayIncorrect
}

// Advance moves past feedback to the next question. Returns nil when the
// session target has been reached (the caller should Stop).
func (o *Orchestrator) Advance(now time.Time) *Question {
	if o.phase != PhaseRunning || !o.awaitingAdvance {
		return nil
	}
	if o.done(now) {
		o.current = nil
		return nil
	}
	o.setupNextQuestion(now)
	return o.current
}

// done reports whether the session target has been reached.
func (o *Orchestrator) done(now time.Time) bool {
	switch o.cfg.Mode {
	case ModeDrill:
		return o.scorer.Counters.QuestionCount >= o.cfg.Target
	case ModeSprint:
		return o.Elapsed(now) >= time.Duration(o.cfg.Target)*time.Second
	}
	return false
}

// Pause freezes elapsed-time accumulation without resetting it.
func (o *Orchestrator) Pause(now time.Time) error {
	if o.phase != PhaseRunning {
		return fmt.Errorf("cannot pause: session not running")
	}
	o.phase = PhasePaused
	o.pausedAt = now
	return nil
}

// Resume closes the pause interval, charging it to both the per-question
// accumulator and the session total.
func (o *Orchestrator) Resume(now time.Time) error {
	if o.phase != PhasePaused {
		return fmt.Errorf("cannot resume: session not paused")
	}
	d := now.Sub(o.pausedAt)
	if d < 0 {
		d = 0
	}
	o.pauseAccrued += d
	o.scorer.Counters.TotalPauseTime += d
	o.phase = PhaseRunning
	return nil
}

// Stop ends the session from Running or Paused and returns the summary.
// The seq bump invalidates every pending timer callback, so nothing can
// mutate state for a later session.
func (o *Orchestrator) Stop(now time.Time) Summary {
	if o.phase == PhasePaused {
		_ = o.Resume(now)
	}
	o.phase = PhaseStopped
	o.seq++
	o.current = nil
	o.awaitingAdvance = false

	c := o.scorer.Counters
	var totalTime float64
	for _, a := range o.attempts {
		totalTime += a.TimeTaken
	}
	avg := 0.0
	if len(o.attempts) > 0 {
		avg = totalTime / float64(len(o.attempts))
	}

	return Summary{
		Config:     o.cfg,
		Questions:  c.QuestionCount,
		Correct:    c.CorrectCount,
		Accuracy:   c.Accuracy(),
		AvgTime:    avg,
		BestStreak: c.BestStreak,
		Duration:   o.Elapsed(now),
		Levels:     o.scorer.Adaptive.History,
		Attempts:   o.attempts,
	}
}

// Elapsed is the active session duration, paused intervals excluded.
func (o *Orchestrator) Elapsed(now time.Time) time.Duration {
	if o.phase == PhaseIdle {
		return 0
	}
	e := now.Sub(o.startedAt) - o.scorer.Counters.TotalPauseTime
	if o.phase == PhasePaused {
		e -= now.Sub(o.pausedAt)
	}
	if e < 0 {
		e = 0
	}
	return e
}

// QuestionElapsed is the live question's duration so far, paused intervals
// excluded.
func (o *Orchestrator) QuestionElapsed(now time.Time) time.Duration {
	if o.current == nil {
		return 0
	}
	e := now.Sub(o.questionStart) - o.pauseAccrued
	if o.phase == PhasePaused {
		e -= now.Sub(o.pausedAt)
	}
	if e < 0 {
		e = 0
	}
	return e
}

// Phase returns the lifecycle state.
func (o *Orchestrator) Phase() Phase { return o.phase }

// Current returns the live question, nil between questions.
func (o *Orchestrator) Current() *Question { return o.current }

// Seq identifies the live question generation. Timer callbacks carry it and
// are dropped when stale.
func (o *Orchestrator) Seq() int { return o.seq }

// AwaitingAdvance reports whether feedback is pending.
func (o *Orchestrator) AwaitingAdvance() bool { return o.awaitingAdvance }

// Counters returns a copy of the session counters.
func (o *Orchestrator) Counters() SessionCounters { return o.scorer.Counters }

// Adaptive exposes the difficulty state for display.
func (o *Orchestrator) Adaptive() *AdaptiveState { return o.scorer.Adaptive }

// Attempts returns the append-only session attempt log.
func (o *Orchestrator) Attempts() []Attempt { return o.attempts }

// ConfigValue returns the active session configuration.
func (o *Orchestrator) ConfigValue() Config { return o.cfg }

// LastID returns the highest assigned question id.
func (o *Orchestrator) LastID() int64 { return o.nextID }
