package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func sampleAttempt(id int64, correct bool) AttemptEventData {
	return AttemptEventData{
		AttemptID:     id,
		SessionID:     "s1",
		Operation:     "addition",
		Digits:        2,
		Question:      "17 + 48",
		Num1:          17,
		Num2:          48,
		UserAnswer:    65,
		CorrectAnswer: 65,
		Correct:       correct,
		TimeTaken:     2.5,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLastAttemptIDEmpty(t *testing.T) {
	repo := testRepo(t)
	id, err := repo.LastAttemptID(context.Background())
	if err != nil {
		t.Fatalf("last attempt id: %v", err)
	}
	if id != 0 {
		t.Fatalf("id = %d, want 0 for empty log", id)
	}
}

func TestAppendAndListAttempts(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if err := repo.AppendAttempt(ctx, sampleAttempt(i, i != 2)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	id, err := repo.LastAttemptID(ctx)
	if err != nil {
		t.Fatalf("last attempt id: %v", err)
	}
	if id != 3 {
		t.Fatalf("last id = %d, want 3", id)
	}

	records, err := repo.ListAttempts(ctx, AttemptFilter{Operation: "addition", Digits: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Oldest first.
	for i, rec := range records {
		if rec.AttemptID != int64(i+1) {
			t.Errorf("record %d id = %d, want %d", i, rec.AttemptID, i+1)
		}
	}

	none, err := repo.ListAttempts(ctx, AttemptFilter{Operation: "division"})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("division filter returned %d records, want 0", len(none))
	}
}

func TestAchievementUnlockOnce(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	data := AchievementEventData{Code: "first_win", Name: "First Steps", SessionID: "s1"}
	if err := repo.AppendAchievement(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAchievement(ctx, data); err == nil {
		t.Fatal("duplicate unlock succeeded, want unique violation")
	}

	unlocked, err := repo.UnlockedAchievements(ctx)
	if err != nil {
		t.Fatalf("unlocked: %v", err)
	}
	if !unlocked["first_win"] {
		t.Fatal("first_win not in unlocked set")
	}
}

func TestPerformanceBreakdown(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := int64(1); i <= 4; i++ {
		a := sampleAttempt(i, i%2 == 0)
		if i > 2 {
			a.Operation = "division"
			a.Digits = 1
		}
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := repo.PerformanceBreakdown(ctx)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d breakdown rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Count != 2 || row.Correct != 1 {
			t.Errorf("row %s/%d = count %d correct %d, want 2/1", row.Operation, row.Digits, row.Count, row.Correct)
		}
	}
}

func TestListSessions(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start", Mode: "drill", Operation: "addition", Digits: 2}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	for i, id := range []string{"s1", "s2"} {
		err := repo.AppendSession(ctx, SessionEventData{
			SessionID: id, Action: "end", Mode: "drill", Operation: "addition",
			Digits: 2, Questions: 20, Correct: 15 + i, BestStreak: 6, AvgTime: 3.2, DurationSecs: 64,
		})
		if err != nil {
			t.Fatalf("append end %s: %v", id, err)
		}
	}

	sessions, err := repo.ListSessions(ctx, 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	// Start events excluded, newest first.
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].SessionID != "s2" || sessions[1].SessionID != "s1" {
		t.Errorf("order = %s, %s, want s2, s1", sessions[0].SessionID, sessions[1].SessionID)
	}
	if sessions[0].Correct != 16 {
		t.Errorf("correct = %d, want 16", sessions[0].Correct)
	}

	one, err := repo.ListSessions(ctx, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(one) != 1 || one[0].SessionID != "s2" {
		t.Errorf("limit 1 returned %v", one)
	}
}

func TestSequenceMonotonicAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start", Mode: "endless", Operation: "addition", Digits: 2}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendAttempt(ctx, sampleAttempt(1, true)); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	var maxSession, minAttempt int64
	if err := s.DB().QueryRow(`SELECT MAX(sequence) FROM session_events`).Scan(&maxSession); err != nil {
		t.Fatalf("query session sequence: %v", err)
	}
	if err := s.DB().QueryRow(`SELECT MIN(sequence) FROM attempt_events`).Scan(&minAttempt); err != nil {
		t.Fatalf("query attempt sequence: %v", err)
	}
	if minAttempt <= maxSession {
		t.Fatalf("attempt sequence %d not after session sequence %d", minAttempt, maxSession)
	}
}
