package practice

import (
	"time"

	"github.com/prajwalk/mathsprint/internal/engine"
)

// startedMsg is sent when session startup (id seeding + first question)
// completes.
type startedMsg struct {
	Err error
}

// weaknessPoolMsg delivers an async weakness fetch. Scope fields let the
// selector drop responses that arrive after a rescope.
type weaknessPoolMsg struct {
	Op      engine.Operation
	Digits  int
	Entries []engine.WeaknessEntry
	Err     error
}

// advanceTimerMsg fires when the feedback display period ends. Seq
// identifies the question generation it was scheduled for; stale
// messages are dropped.
type advanceTimerMsg struct {
	Seq int
}

// clockTickMsg updates the timer display once per second.
type clockTickMsg time.Time
