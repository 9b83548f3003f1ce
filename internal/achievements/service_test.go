package achievements

import (
	"context"
	"testing"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	unlocked map[string]bool
	total    int
	appended []store.AchievementEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, _ store.AttemptEventData) error {
	return nil
}

func (m *mockEventRepo) AppendSession(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) AppendAchievement(_ context.Context, data store.AchievementEventData) error {
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockEventRepo) LastAttemptID(_ context.Context) (int64, error) { return 0, nil }

func (m *mockEventRepo) ListSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ListAttempts(_ context.Context, _ store.AttemptFilter) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) UnlockedAchievements(_ context.Context) (map[string]bool, error) {
	if m.unlocked == nil {
		return map[string]bool{}, nil
	}
	return m.unlocked, nil
}

func (m *mockEventRepo) TotalAttempts(_ context.Context) (int, error) { return m.total, nil }

func (m *mockEventRepo) PerformanceBreakdown(_ context.Context) ([]store.BreakdownRow, error) {
	return nil, nil
}

func (m *mockEventRepo) DailyStats(_ context.Context, _ int) ([]store.DailyRow, error) {
	return nil, nil
}

var _ store.EventRepo = (*mockEventRepo)(nil)

func newTestService(t *testing.T, repo *mockEventRepo) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func summary(questions, correct int, avgTime float64, op engine.Operation) engine.Summary {
	acc := 0.0
	if questions > 0 {
		acc = float64(correct) / float64(questions)
	}
	return engine.Summary{
		Config:    engine.Config{Operation: op, Digits: 1, Mode: engine.ModeEndless},
		Questions: questions,
		Correct:   correct,
		Accuracy:  acc,
		AvgTime:   avgTime,
	}
}

func codes(badges []Badge) map[string]bool {
	out := make(map[string]bool, len(badges))
	for _, b := range badges {
		out[b.Code] = true
	}
	return out
}

func TestFirstWinOnAnySession(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(t, repo)

	got, err := svc.CheckSession(context.Background(), summary(3, 1, 5, engine.OpAddition), "s1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !codes(got)[CodeFirstWin] {
		t.Fatal("first_win not unlocked by first session")
	}

	// Second session must not re-unlock.
	got, err = svc.CheckSession(context.Background(), summary(3, 1, 5, engine.OpAddition), "s2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if codes(got)[CodeFirstWin] {
		t.Fatal("first_win unlocked twice")
	}
}

func TestSniperRequiresTwentyPerfect(t *testing.T) {
	svc := newTestService(t, &mockEventRepo{unlocked: map[string]bool{CodeFirstWin: true}})

	got, err := svc.CheckSession(context.Background(), summary(19, 19, 3, engine.OpAddition), "s1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if codes(got)[CodeSniper] {
		t.Fatal("sniper unlocked below 20 questions")
	}

	got, err = svc.CheckSession(context.Background(), summary(20, 20, 3, engine.OpAddition), "s2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !codes(got)[CodeSniper] {
		t.Fatal("sniper not unlocked by perfect 20-question session")
	}
}

func TestSpeedDemonAndMarathon(t *testing.T) {
	svc := newTestService(t, &mockEventRepo{unlocked: map[string]bool{CodeFirstWin: true}})

	got, err := svc.CheckSession(context.Background(), summary(50, 40, 1.8, engine.OpMultiplication), "s1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	unlocked := codes(got)
	if !unlocked[CodeSpeedDemon] {
		t.Error("speed_demon not unlocked at 1.8s average")
	}
	if !unlocked[CodeMarathon] {
		t.Error("marathon not unlocked at 50 questions")
	}
	if unlocked[CodeSniper] {
		t.Error("sniper unlocked without perfect accuracy")
	}
}

func TestMasterMindNeedsMixed(t *testing.T) {
	svc := newTestService(t, &mockEventRepo{unlocked: map[string]bool{CodeFirstWin: true}})

	got, err := svc.CheckSession(context.Background(), summary(20, 19, 4, engine.OpAddition), "s1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if codes(got)[CodeMasterMind] {
		t.Fatal("master_mind unlocked for a single-operation session")
	}

	got, err = svc.CheckSession(context.Background(), summary(20, 19, 4, engine.OpMixed), "s2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !codes(got)[CodeMasterMind] {
		t.Fatal("master_mind not unlocked for 95% mixed session")
	}
}

func TestCenturionUsesTotalLog(t *testing.T) {
	repo := &mockEventRepo{unlocked: map[string]bool{CodeFirstWin: true}, total: 99}
	svc := newTestService(t, repo)

	got, err := svc.CheckSession(context.Background(), summary(5, 5, 3, engine.OpAddition), "s1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if codes(got)[CodeCenturion] {
		t.Fatal("centurion unlocked at 99 total attempts")
	}

	repo.total = 104
	got, err = svc.CheckSession(context.Background(), summary(5, 5, 3, engine.OpAddition), "s2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !codes(got)[CodeCenturion] {
		t.Fatal("centurion not unlocked at 104 total attempts")
	}
}

func TestAllReflectsUnlockState(t *testing.T) {
	svc := newTestService(t, &mockEventRepo{unlocked: map[string]bool{CodeMarathon: true}})

	statuses := svc.All()
	if len(statuses) != len(Badges) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(Badges))
	}
	for _, st := range statuses {
		want := st.Code == CodeMarathon
		if st.Unlocked != want {
			t.Errorf("%s unlocked = %v, want %v", st.Code, st.Unlocked, want)
		}
	}
}
