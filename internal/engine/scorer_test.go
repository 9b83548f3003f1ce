package engine

import (
	"math"
	"testing"
	"time"
)

func scoreN(t *testing.T, sc *Scorer, q *Question, answers []string) []ScoreResult {
	t.Helper()
	now := time.Unix(1700000000, 0)
	results := make([]ScoreResult, 0, len(answers))
	for _, a := range answers {
		results = append(results, sc.Score(q, a, 2*time.Second, now))
		now = now.Add(3 * time.Second)
	}
	return results
}

func TestScoreTolerance(t *testing.T) {
	tests := []struct {
		raw     string
		answer  float64
		correct bool
	}{
		{"7.995", 8.00, true},
		{"7.98", 8.00, false},
		{"8", 8.00, true},
		{"8.009", 8.00, true},
		{"8.01", 8.00, false},
		{"  42 ", 42, true},
		{"abc", 8.00, false},
		{"", 8.00, false},
	}

	for _, tt := range tests {
		sc := NewScorer()
		q := &Question{ID: 1, Operation: OpDivision, Display: "16 ÷ 2", Answer: tt.answer}
		res := sc.Score(q, tt.raw, time.Second, time.Now())
		if res.Correct != tt.correct {
			t.Errorf("Score(%q vs %v): correct = %v, want %v", tt.raw, tt.answer, res.Correct, tt.correct)
		}
		if res.Attempt.Correct != res.Correct {
			t.Errorf("attempt/result correctness mismatch for %q", tt.raw)
		}
	}
}

func TestScoreNonNumericIsNaNNotFatal(t *testing.T) {
	sc := NewScorer()
	q := &Question{ID: 1, Operation: OpAddition, Display: "2 + 2", Answer: 4}
	res := sc.Score(q, "four", time.Second, time.Now())
	if res.Correct {
		t.Fatal("non-numeric input scored correct")
	}
	if !math.IsNaN(res.Attempt.UserAnswer) {
		t.Fatalf("UserAnswer = %v, want NaN", res.Attempt.UserAnswer)
	}
}

func TestScoreNegativeElapsedClamped(t *testing.T) {
	sc := NewScorer()
	q := &Question{ID: 1, Operation: OpAddition, Display: "2 + 2", Answer: 4}
	res := sc.Score(q, "4", -3*time.Second, time.Now())
	if res.Attempt.TimeTaken < 0 {
		t.Fatalf("TimeTaken = %v, want >= 0", res.Attempt.TimeTaken)
	}
}

func TestMilestoneWatermark(t *testing.T) {
	sc := NewScorer()
	q := &Question{ID: 1, Operation: OpAddition, Display: "2 + 2", Answer: 4}

	fired := []int{}
	submit := func(raw string) {
		res := sc.Score(q, raw, time.Second, time.Now())
		if res.Milestone != 0 {
			fired = append(fired, res.Milestone)
		}
	}

	// Climb to 5: one celebration.
	for i := 0; i < 5; i++ {
		submit("4")
	}
	// Break the streak, climb back to exactly 5: no re-trigger.
	submit("0")
	for i := 0; i < 5; i++ {
		submit("4")
	}
	// Continue to 10: the 10 celebration fires exactly once.
	for i := 0; i < 5; i++ {
		submit("4")
	}

	want := []int{5, 10}
	if len(fired) != len(want) {
		t.Fatalf("milestones fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("milestones fired = %v, want %v", fired, want)
		}
	}
	if sc.Counters.LastMilestone != 10 {
		t.Fatalf("LastMilestone = %d, want 10", sc.Counters.LastMilestone)
	}
}

func TestMilestoneWatermarkSurvivesStreakReset(t *testing.T) {
	sc := NewScorer()
	sc.Counters.Streak = 4
	sc.Counters.LastMilestone = 5

	q := &Question{ID: 1, Operation: OpAddition, Display: "2 + 2", Answer: 4}
	res := sc.Score(q, "4", time.Second, time.Now())
	if res.Milestone != 0 {
		t.Fatalf("milestone re-fired at already-celebrated threshold: %d", res.Milestone)
	}
	if sc.Counters.LastMilestone != 5 {
		t.Fatalf("watermark changed to %d", sc.Counters.LastMilestone)
	}
}

func TestScoreCountersAndStreak(t *testing.T) {
	sc := NewScorer()
	q := &Question{ID: 1, Operation: OpAddition, Display: "2 + 2", Answer: 4}

	scoreN(t, sc, q, []string{"4", "4", "0", "4"})

	c := sc.Counters
	if c.QuestionCount != 4 {
		t.Errorf("QuestionCount = %d, want 4", c.QuestionCount)
	}
	if c.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", c.CorrectCount)
	}
	if c.Streak != 1 {
		t.Errorf("Streak = %d, want 1", c.Streak)
	}
	if c.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", c.BestStreak)
	}
	if got := c.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestScoreDrivesAdaptiveState(t *testing.T) {
	sc := NewScorer()
	q := &Question{ID: 1, Operation: OpAddition, Display: "2 + 2", Answer: 4}

	scoreN(t, sc, q, []string{"4", "4", "4"})
	if sc.Adaptive.Level != 2 {
		t.Fatalf("level = %d after 3 correct, want 2", sc.Adaptive.Level)
	}
	scoreN(t, sc, q, []string{"0"})
	if sc.Adaptive.Level != 1 {
		t.Fatalf("level = %d after incorrect, want 1", sc.Adaptive.Level)
	}
}
