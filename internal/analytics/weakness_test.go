package analytics

import (
	"context"
	"testing"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attempts  []store.AttemptRecord
	breakdown []store.BreakdownRow
	unlocked  map[string]bool
	appended  []store.AchievementEventData
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

func (m *mockEventRepo) LastAttemptID(_ context.Context) (int64, error) {
	return 0, nil
}

func (m *mockEventRepo) ListSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ListAttempts(_ context.Context, f store.AttemptFilter) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, a := range m.attempts {
		if f.Operation != "" && a.Operation != f.Operation {
			continue
		}
		if f.Digits != 0 && a.Digits != f.Digits {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockEventRepo) UnlockedAchievements(_ context.Context) (map[string]bool, error) {
	if m.unlocked == nil {
		return map[string]bool{}, nil
	}
	return m.unlocked, nil
}

func (m *mockEventRepo) TotalAttempts(_ context.Context) (int, error) {
	return len(m.attempts), nil
}

func (m *mockEventRepo) PerformanceBreakdown(_ context.Context) ([]store.BreakdownRow, error) {
	return m.breakdown, nil
}

func (m *mockEventRepo) DailyStats(_ context.Context, _ int) ([]store.DailyRow, error) {
	return nil, nil
}

var _ store.EventRepo = (*mockEventRepo)(nil)

func rec(op string, n1, n2 int, correct bool, timeTaken float64) store.AttemptRecord {
	return store.AttemptRecord{
		Operation:     op,
		Digits:        1,
		Num1:          n1,
		Num2:          n2,
		Correct:       correct,
		TimeTaken:     timeTaken,
		CorrectAnswer: float64(n1 + n2),
	}
}

func TestAnalyzeFlagsLowAccuracy(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		// 7+8 answered wrong twice: accuracy 0 < 0.7.
		rec("addition", 7, 8, false, 3),
		rec("addition", 7, 8, false, 3),
		// 2+3 solid.
		rec("addition", 2, 3, true, 2),
		rec("addition", 2, 3, true, 2),
	}}

	weaknesses, err := NewAnalyzer(repo).Analyze(context.Background(), engine.OpAddition, 1)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(weaknesses) != 1 {
		t.Fatalf("got %d weaknesses, want 1", len(weaknesses))
	}
	w := weaknesses[0]
	if w.Entry.Num1 != 7 || w.Entry.Num2 != 8 {
		t.Errorf("flagged pair %d/%d, want 7/8", w.Entry.Num1, w.Entry.Num2)
	}
	if w.Reason != "accuracy" {
		t.Errorf("reason = %q, want accuracy", w.Reason)
	}
}

func TestAnalyzeFlagsSlowPairs(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		// Global average pulled down by quick pairs.
		rec("addition", 2, 3, true, 2),
		rec("addition", 2, 3, true, 2),
		rec("addition", 4, 5, true, 2),
		rec("addition", 4, 5, true, 2),
		// 9+6 correct but slow: 10 > 1.5x global avg.
		rec("addition", 9, 6, true, 10),
		rec("addition", 9, 6, true, 10),
	}}

	weaknesses, err := NewAnalyzer(repo).Analyze(context.Background(), engine.OpAddition, 1)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(weaknesses) != 1 {
		t.Fatalf("got %d weaknesses, want 1", len(weaknesses))
	}
	if weaknesses[0].Reason != "speed" {
		t.Errorf("reason = %q, want speed", weaknesses[0].Reason)
	}
}

func TestAnalyzeIgnoresSingleAttempts(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		rec("addition", 7, 8, false, 3),
	}}

	weaknesses, err := NewAnalyzer(repo).Analyze(context.Background(), engine.OpAddition, 1)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(weaknesses) != 0 {
		t.Fatalf("got %d weaknesses from one attempt, want 0", len(weaknesses))
	}
}

func TestAnalyzeSortsWorstFirstAndCaps(t *testing.T) {
	var attempts []store.AttemptRecord
	// Twelve weak pairs with distinct accuracies: pair (i, i) answered
	// correctly i times out of 20.
	for i := 1; i <= 12; i++ {
		for j := 0; j < 20; j++ {
			attempts = append(attempts, rec("addition", i, i, j < i, 3))
		}
	}
	repo := &mockEventRepo{attempts: attempts}

	weaknesses, err := NewAnalyzer(repo).Analyze(context.Background(), engine.OpAddition, 1)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(weaknesses) != 10 {
		t.Fatalf("got %d weaknesses, want capped at 10", len(weaknesses))
	}
	for i := 1; i < len(weaknesses); i++ {
		if weaknesses[i].Accuracy < weaknesses[i-1].Accuracy {
			t.Fatalf("weaknesses not sorted worst-first at index %d", i)
		}
	}
	if weaknesses[0].Entry.Num1 != 1 {
		t.Errorf("worst pair num1 = %d, want 1", weaknesses[0].Entry.Num1)
	}
}

func TestWeaknessesMixedCoversAllOperations(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		rec("addition", 7, 8, false, 3),
		rec("addition", 7, 8, false, 3),
		{Operation: "division", Digits: 1, Num1: 8, Num2: 2, CorrectAnswer: 4, TimeTaken: 3},
		{Operation: "division", Digits: 1, Num1: 8, Num2: 2, CorrectAnswer: 4, TimeTaken: 3},
	}}

	// Mixed mode has no single operation filter, so weak pairs from any
	// basic operation qualify.
	entries, err := NewAnalyzer(repo).Weaknesses(context.Background(), engine.OpMixed, 1)
	if err != nil {
		t.Fatalf("weaknesses: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestAnalyzeEmptyLog(t *testing.T) {
	weaknesses, err := NewAnalyzer(&mockEventRepo{}).Analyze(context.Background(), engine.OpAddition, 1)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if weaknesses != nil {
		t.Fatalf("got %v, want nil for empty log", weaknesses)
	}
}
