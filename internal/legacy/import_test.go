package legacy

import (
	"context"
	"testing"
	"time"

	"github.com/prajwalk/mathsprint/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	lastID   int64
	appended []store.AttemptEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockEventRepo) AppendSession(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) AppendAchievement(_ context.Context, _ store.AchievementEventData) error {
	return nil
}

func (m *mockEventRepo) LastAttemptID(_ context.Context) (int64, error) { return m.lastID, nil }

func (m *mockEventRepo) ListSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ListAttempts(_ context.Context, _ store.AttemptFilter) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) UnlockedAchievements(_ context.Context) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (m *mockEventRepo) TotalAttempts(_ context.Context) (int, error) {
	return len(m.appended), nil
}

func (m *mockEventRepo) PerformanceBreakdown(_ context.Context) ([]store.BreakdownRow, error) {
	return nil, nil
}

func (m *mockEventRepo) DailyStats(_ context.Context, _ int) ([]store.DailyRow, error) {
	return nil, nil
}

var _ store.EventRepo = (*mockEventRepo)(nil)

const sampleFile = `{
	"lastId": 3,
	"attempts": [
		{
			"id": 1,
			"question": "17 + 48",
			"operation": "addition",
			"digits": 2,
			"userAnswer": 65,
			"correctAnswer": 65,
			"isCorrect": true,
			"timeTaken": 2.5,
			"timestamp": 1700000000.5
		},
		{
			"id": 2,
			"question": "84 ÷ 4 = ?",
			"operation": "division",
			"digits": 2,
			"userAnswer": 20,
			"correctAnswer": 21,
			"isCorrect": false,
			"timeTaken": 6.1,
			"timestamp": 1700000100
		},
		{
			"id": 3,
			"question": "",
			"operation": "addition"
		}
	]
}`

func TestImportAppendsRecords(t *testing.T) {
	repo := &mockEventRepo{lastID: 40}
	res, err := NewImporter(repo).Import(context.Background(), []byte(sampleFile))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Imported != 2 || res.Skipped != 1 {
		t.Fatalf("imported %d skipped %d, want 2/1", res.Imported, res.Skipped)
	}
	if res.LastID != 42 {
		t.Fatalf("last id = %d, want 42", res.LastID)
	}
	if len(repo.appended) != 2 {
		t.Fatalf("appended %d records, want 2", len(repo.appended))
	}

	first := repo.appended[0]
	if first.AttemptID != 41 {
		t.Errorf("first id = %d, want 41 (continuing after stored log)", first.AttemptID)
	}
	if first.Num1 != 17 || first.Num2 != 48 {
		t.Errorf("operands = %d/%d, want 17/48", first.Num1, first.Num2)
	}
	if first.SessionID != "legacy-import" {
		t.Errorf("session id = %q", first.SessionID)
	}
	wantTS := time.Unix(1700000000, int64(500*time.Millisecond)).UTC()
	if !first.Timestamp.Equal(wantTS) {
		t.Errorf("timestamp = %v, want %v", first.Timestamp, wantTS)
	}

	second := repo.appended[1]
	if second.Num1 != 84 || second.Num2 != 4 {
		t.Errorf("operands = %d/%d, want 84/4 from \"= ?\" question", second.Num1, second.Num2)
	}
	if second.Operation != "division" {
		t.Errorf("operation = %q, want division", second.Operation)
	}
	if second.Correct {
		t.Error("second record imported as correct, want incorrect")
	}
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `lastId: 3`},
		{"missing attempts", `{"lastId": 3}`},
		{"wrong attempts type", `{"attempts": {"id": 1}}`},
		{"attempt missing question", `{"attempts": [{"operation": "addition"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepo{}
			if _, err := NewImporter(repo).Import(context.Background(), []byte(tt.body)); err == nil {
				t.Error("invalid payload imported without error")
			}
			if len(repo.appended) != 0 {
				t.Errorf("appended %d records from invalid payload", len(repo.appended))
			}
		})
	}
}

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		q          string
		num1, num2 int
		op         string
		ok         bool
	}{
		{"17 + 48", 17, 48, "addition", true},
		{"9 × 7 = ?", 9, 7, "multiplication", true},
		{"50 − 8", 50, 8, "subtraction", true},
		{"84 / 4", 84, 4, "division", true},
		{"(3 + 4) × 2", 0, 0, "", false},
		{"", 0, 0, "", false},
	}
	for _, tt := range tests {
		n1, n2, op, ok := parseQuestion(tt.q)
		if ok != tt.ok || n1 != tt.num1 || n2 != tt.num2 || op != tt.op {
			t.Errorf("parseQuestion(%q) = %d %d %q %v, want %d %d %q %v",
				tt.q, n1, n2, op, ok, tt.num1, tt.num2, tt.op, tt.ok)
		}
	}
}
