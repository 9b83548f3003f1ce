package engine

import (
	"math"
	"testing"
)

func TestAdaptiveAdvancesEveryThreeCorrect(t *testing.T) {
	s := NewAdaptiveState()
	if s.Level != 1 || s.ConsecutiveCorrect != 0 {
		t.Fatalf("initial state = level %d, consecutive %d, want 1, 0", s.Level, s.ConsecutiveCorrect)
	}

	for i := 0; i < 3; i++ {
		s.Record(true, i+1)
	}
	if s.Level != 2 {
		t.Fatalf("after 3 correct: level = %d, want 2", s.Level)
	}
	if s.ConsecutiveCorrect != 0 {
		t.Fatalf("consecutive not reset on advance: %d", s.ConsecutiveCorrect)
	}

	for i := 0; i < 3; i++ {
		s.Record(true, i+4)
	}
	if s.Level != 3 {
		t.Fatalf("after 6 correct: level = %d, want 3", s.Level)
	}

	// Level never exceeds 3.
	for i := 0; i < 12; i++ {
		s.Record(true, i+7)
	}
	if s.Level != 3 {
		t.Fatalf("level exceeded cap: %d", s.Level)
	}
}

func TestAdaptiveDropsOneLevelOnIncorrect(t *testing.T) {
	s := &AdaptiveState{Level: 2, ConsecutiveCorrect: 2}
	s.Record(false, 5)
	if s.Level != 1 {
		t.Fatalf("level = %d, want 1", s.Level)
	}
	if s.ConsecutiveCorrect != 0 {
		t.Fatalf("consecutive = %d, want 0", s.ConsecutiveCorrect)
	}

	// Never below 1.
	s.Record(false, 6)
	if s.Level != 1 {
		t.Fatalf("level dropped below floor: %d", s.Level)
	}
}

func TestAdaptiveNoDoubleDropFromLevelThree(t *testing.T) {
	s := &AdaptiveState{Level: 3}
	s.Record(false, 1)
	if s.Level != 2 {
		t.Fatalf("level = %d, want 2 (single-step drop)", s.Level)
	}
}

func TestNextToughnessSmartMixing(t *testing.T) {
	s := &AdaptiveState{Level: 3}
	rng := testRNG(30)

	const trials = 10000
	easy := 0
	for i := 0; i < trials; i++ {
		switch tough := s.NextToughness(rng); tough {
		case ToughnessEasy:
			easy++
		case s.Level:
		default:
			t.Fatalf("toughness = %d, want 1 or %d", tough, s.Level)
		}
	}

	rate := float64(easy) / trials
	if math.Abs(rate-0.3) > 0.02 {
		t.Fatalf("easy mix rate = %.4f, want 0.3 ± 0.02", rate)
	}
}

func TestAdaptiveHistoryRecordsTransitions(t *testing.T) {
	s := NewAdaptiveState()
	for i := 0; i < 3; i++ {
		s.Record(true, i+1)
	}
	s.Record(false, 4)

	want := []LevelChange{{Level: 2, AtQuestion: 3}, {Level: 1, AtQuestion: 4}}
	if len(s.History) != len(want) {
		t.Fatalf("history length = %d, want %d", len(s.History), len(want))
	}
	for i, lc := range want {
		if s.History[i] != lc {
			t.Errorf("history[%d] = %+v, want %+v", i, s.History[i], lc)
		}
	}
}
