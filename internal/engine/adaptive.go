package engine

import "math/rand/v2"

const (
	// MinLevel and MaxLevel bound the per-session difficulty level.
	MinLevel = 1
	MaxLevel = 3

	// streakToAdvance is the consecutive-correct count that raises the level.
	streakToAdvance = 3

	// easyMixRate is the probability that the next question is forced to
	// toughness 1 regardless of the current level. Keeps hard runs from
	// turning into a wall.
	easyMixRate = 0.3
)

// LevelChange records a level transition for the session history.
type LevelChange struct {
	Level      int
	AtQuestion int
}

// AdaptiveState is the per-session difficulty state machine. One instance
// per session, mutated only by the scorer.
type AdaptiveState struct {
	Level              int
	ConsecutiveCorrect int
	History            []LevelChange
}

// NewAdaptiveState returns the session-start state: level 1, no streak.
func NewAdaptiveState() *AdaptiveState {
	return &AdaptiveState{Level: MinLevel}
}

// Record applies one scoring outcome. Three consecutive correct answers
// raise the level by one (capped at 3) and reset the run; a single
// incorrect answer resets the run and drops the level by exactly one
// (floored at 1).
func (s *AdaptiveState) Record(correct bool, questionIndex int) {
	if correct {
		s.ConsecutiveCorrect++
		if s.ConsecutiveCorrect >= streakToAdvance && s.Level < MaxLevel {
			s.Level++
			s.ConsecutiveCorrect = 0
			s.History = append(s.History, LevelChange{Level: s.Level, AtQuestion: questionIndex})
		}
		return
	}
	s.ConsecutiveCorrect = 0
	if s.Level > MinLevel {
		s.Level--
		s.History = append(s.History, LevelChange{Level: s.Level, AtQuestion: questionIndex})
	}
}

// NextToughness selects the tier for the next question. With probability
// 0.3 it forces toughness 1; otherwise the tier tracks the current level.
func (s *AdaptiveState) NextToughness(rng *rand.Rand) int {
	if rng.Float64() < easyMixRate {
		return ToughnessEasy
	}
	return s.Level
}
