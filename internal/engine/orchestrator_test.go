package engine

import (
	"fmt"
	"testing"
	"time"
)

func newTestOrchestrator(seed uint64) *Orchestrator {
	return NewOrchestrator(NewGenerator(testRNG(seed)), NewWeaknessSelector(), testRNG(seed+100))
}

func TestEndToEndFiveCorrectAnswers(t *testing.T) {
	o := newTestOrchestrator(40)
	now := time.Unix(1700000000, 0)

	q, err := o.Start(Config{Operation: OpAddition, Digits: 2, Mode: ModeEndless}, 0, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	milestones := 0
	for i := 0; i < 5; i++ {
		if q.Toughness != ToughnessMedium {
			t.Fatalf("non-adaptive session produced toughness %d, want 2", q.Toughness)
		}
		now = now.Add(2 * time.Second)
		res, err := o.Submit(fmt.Sprintf("%d", q.Num1+q.Num2), now)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if !res.Correct {
			t.Fatalf("exact answer for %q scored incorrect", q.Display)
		}
		if res.Milestone != 0 {
			milestones++
			if res.Milestone != 5 {
				t.Fatalf("milestone = %d, want 5", res.Milestone)
			}
		}
		now = now.Add(AdvanceDelay(res.Correct))
		q = o.Advance(now)
	}

	c := o.Counters()
	if c.QuestionCount != 5 || c.CorrectCount != 5 || c.Streak != 5 {
		t.Fatalf("counters = %+v, want 5/5/5", c)
	}
	if milestones != 1 {
		t.Fatalf("5-streak celebration fired %d times, want 1", milestones)
	}
}

func TestQuestionIDsContinueFromLastID(t *testing.T) {
	o := newTestOrchestrator(41)
	now := time.Unix(1700000000, 0)

	q, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeEndless}, 37, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if q.ID != 38 {
		t.Fatalf("first question id = %d, want 38", q.ID)
	}

	res, _ := o.Submit("0", now.Add(time.Second))
	if res.Attempt.ID != 38 {
		t.Fatalf("attempt id = %d, want 38", res.Attempt.ID)
	}
	q = o.Advance(now.Add(2 * time.Second))
	if q.ID != 39 {
		t.Fatalf("second question id = %d, want 39", q.ID)
	}
}

func TestPauseExcludedFromTimeTaken(t *testing.T) {
	o := newTestOrchestrator(42)
	now := time.Unix(1700000000, 0)

	if _, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeEndless}, 0, now); err != nil {
		t.Fatalf("start: %v", err)
	}

	// 2s of thinking, 10s paused, 1s more thinking.
	now = now.Add(2 * time.Second)
	if err := o.Pause(now); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if o.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", o.Phase())
	}
	now = now.Add(10 * time.Second)
	if err := o.Resume(now); err != nil {
		t.Fatalf("resume: %v", err)
	}
	now = now.Add(1 * time.Second)

	res, err := o.Submit("0", now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Attempt.TimeTaken != 3 {
		t.Fatalf("TimeTaken = %v, want 3 (pause excluded)", res.Attempt.TimeTaken)
	}
	if o.Counters().TotalPauseTime != 10*time.Second {
		t.Fatalf("TotalPauseTime = %v, want 10s", o.Counters().TotalPauseTime)
	}
}

func TestPauseAccumulatorResetsPerQuestion(t *testing.T) {
	o := newTestOrchestrator(43)
	now := time.Unix(1700000000, 0)

	if _, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeEndless}, 0, now); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Pause during the first question only.
	_ = o.Pause(now.Add(time.Second))
	_ = o.Resume(now.Add(6 * time.Second))
	if _, err := o.Submit("0", now.Add(8*time.Second)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	o.Advance(now.Add(9 * time.Second))

	// The second question must not inherit the first question's pause.
	res, err := o.Submit("0", now.Add(13*time.Second))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Attempt.TimeTaken != 4 {
		t.Fatalf("second question TimeTaken = %v, want 4", res.Attempt.TimeTaken)
	}
}

func TestSeqInvalidatesStaleCallbacks(t *testing.T) {
	o := newTestOrchestrator(44)
	now := time.Unix(1700000000, 0)

	if _, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeEndless}, 0, now); err != nil {
		t.Fatalf("start: %v", err)
	}
	seqBefore := o.Seq()

	if _, err := o.Submit("0", now.Add(time.Second)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Skip-wait advances immediately; the pending auto-advance timer for
	// seqBefore must now be stale.
	o.Advance(now.Add(time.Second))
	if o.Seq() == seqBefore {
		t.Fatal("seq did not change across question boundary")
	}

	// Stopping invalidates again so no timer can touch a later session.
	seqRunning := o.Seq()
	o.Stop(now.Add(2 * time.Second))
	if o.Seq() == seqRunning {
		t.Fatal("seq did not change on stop")
	}
	if o.Current() != nil {
		t.Fatal("current question survived stop")
	}
}

func TestSubmitGuards(t *testing.T) {
	o := newTestOrchestrator(45)
	now := time.Unix(1700000000, 0)

	if _, err := o.Submit("1", now); err == nil {
		t.Fatal("submit before start succeeded")
	}

	if _, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeEndless}, 0, now); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := o.Submit("1", now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Double-submit while feedback pending.
	if _, err := o.Submit("1", now); err == nil {
		t.Fatal("double submit succeeded")
	}
}

func TestDrillCompletesAtTarget(t *testing.T) {
	o := newTestOrchestrator(46)
	now := time.Unix(1700000000, 0)

	q, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeDrill, Target: 3}, 0, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		now = now.Add(time.Second)
		if _, err := o.Submit("0", now); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		q = o.Advance(now)
	}
	if q != nil {
		t.Fatal("drill continued past target")
	}

	sum := o.Stop(now)
	if sum.Questions != 3 {
		t.Fatalf("summary questions = %d, want 3", sum.Questions)
	}
}

func TestStartValidation(t *testing.T) {
	o := newTestOrchestrator(47)
	now := time.Now()

	cases := []Config{
		{Operation: "cubing", Digits: 2, Mode: ModeEndless},
		{Operation: OpAddition, Digits: 0, Mode: ModeEndless},
		{Operation: OpAddition, Digits: 4, Mode: ModeEndless},
		{Operation: OpAddition, Digits: 2, Mode: "marathon"},
		{Operation: OpAddition, Digits: 2, Mode: ModeDrill, Target: 0},
	}
	for _, cfg := range cases {
		if _, err := o.Start(cfg, 0, now); err == nil {
			t.Errorf("Start(%+v) succeeded, want error", cfg)
		}
	}
}

func TestStopFromPaused(t *testing.T) {
	o := newTestOrchestrator(48)
	now := time.Unix(1700000000, 0)

	if _, err := o.Start(Config{Operation: OpAddition, Digits: 1, Mode: ModeEndless}, 0, now); err != nil {
		t.Fatalf("start: %v", err)
	}
	_ = o.Pause(now.Add(time.Second))
	sum := o.Stop(now.Add(5 * time.Second))
	if o.Phase() != PhaseStopped {
		t.Fatalf("phase = %v, want stopped", o.Phase())
	}
	// 1s active before the pause; the paused 4s are excluded.
	if sum.Duration != time.Second {
		t.Fatalf("duration = %v, want 1s", sum.Duration)
	}
}

func TestAdaptiveSessionUsesPoolOnlyWhenEnabled(t *testing.T) {
	o := newTestOrchestrator(49)
	now := time.Unix(1700000000, 0)

	if _, err := o.Start(Config{Operation: OpAddition, Digits: 2, Mode: ModeEndless}, 0, now); err != nil {
		t.Fatalf("start: %v", err)
	}
	o.Selector().SetPool(OpAddition, 2, []WeaknessEntry{{Op: OpAddition, Num1: 17, Num2: 48}})

	// Non-adaptive sessions never inject weakness targets.
	for i := 0; i < 500; i++ {
		if o.Current().WeaknessTarget {
			t.Fatal("weakness target generated in non-adaptive session")
		}
		now = now.Add(time.Second)
		if _, err := o.Submit("0", now); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if o.Advance(now) == nil {
			t.Fatal("endless session ended")
		}
	}
}
