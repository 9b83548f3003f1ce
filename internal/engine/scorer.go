package engine

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// answerTolerance is the absolute comparison tolerance. Absolute rather
// than relative so floating-point division results land inside it.
const answerTolerance = 0.01

// MilestoneThresholds are the streak lengths that trigger a celebration,
// each at most once per session.
var MilestoneThresholds = []int{5, 10, 20, 50, 100}

// SessionCounters tracks the running totals for one session. Reset at
// session start; mutated after every submitted answer.
type SessionCounters struct {
	QuestionCount  int
	CorrectCount   int
	Streak         int
	BestStreak     int
	LastMilestone  int
	TotalPauseTime time.Duration
}

// Accuracy returns the correct fraction, 0 for an empty session.
func (c SessionCounters) Accuracy() float64 {
	if c.QuestionCount == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(c.QuestionCount)
}

// ScoreResult is the outcome of scoring one submission.
type ScoreResult struct {
	Attempt Attempt
	Correct bool

	// Milestone is the streak threshold first reached by this answer,
	// 0 if none.
	Milestone int
}

// Scorer validates submissions, maintains the session counters and drives
// the adaptive state machine.
type Scorer struct {
	Counters SessionCounters
	Adaptive *AdaptiveState
}

// NewScorer returns a scorer with fresh counters and adaptive state.
func NewScorer() *Scorer {
	return &Scorer{Adaptive: NewAdaptiveState()}
}

// Reset restores session-start state.
func (sc *Scorer) Reset() {
	sc.Counters = SessionCounters{}
	sc.Adaptive = NewAdaptiveState()
}

// Score validates raw against the question within the floating-point
// tolerance and emits the attempt record. Unparseable input scores as NaN,
// which compares incorrect; scoring never fails.
func (sc *Scorer) Score(q *Question, raw string, elapsed time.Duration, now time.Time) ScoreResult {
	userAnswer := parseAnswer(raw)
	correct := math.Abs(userAnswer-q.Answer) < answerTolerance

	if elapsed < 0 {
		elapsed = 0
	}

	sc.Counters.QuestionCount++
	milestone := 0
	if correct {
		sc.Counters.CorrectCount++
		sc.Counters.Streak++
		if sc.Counters.Streak > sc.Counters.BestStreak {
			sc.Counters.BestStreak = sc.Counters.Streak
		}
		milestone = sc.crossMilestone()
	} else {
		// The milestone watermark survives streak resets: climbing back
		// to an already-celebrated threshold stays quiet.
		sc.Counters.Streak = 0
	}

	sc.Adaptive.Record(correct, sc.Counters.QuestionCount)

	return ScoreResult{
		Attempt: Attempt{
			ID:            q.ID,
			Operation:     q.Operation,
			Digits:        q.Digits,
			Question:      q.Display,
			Num1:          q.Num1,
			Num2:          q.Num2,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Answer,
			Correct:       correct,
			TimeTaken:     elapsed.Seconds(),
			Timestamp:     now,
		},
		Correct:   correct,
		Milestone: milestone,
	}
}

// crossMilestone returns the threshold reached by the current streak when
// it exceeds the session watermark, advancing the watermark.
func (sc *Scorer) crossMilestone() int {
	for _, t := range MilestoneThresholds {
		if sc.Counters.Streak == t && t > sc.Counters.LastMilestone {
			sc.Counters.LastMilestone = t
			return t
		}
	}
	return 0
}

// parseAnswer parses a submitted answer, yielding NaN for anything that is
// not a number.
func parseAnswer(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
