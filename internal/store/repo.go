package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/prajwalk/mathsprint/ent"
)

// AttemptEventData captures one scored answer for persistence.
type AttemptEventData struct {
	AttemptID      int64
	SessionID      string
	Operation      string
	Digits         int
	Question       string
	Num1           int
	Num2           int
	UserAnswer     float64
	CorrectAnswer  float64
	Correct        bool
	TimeTaken      float64
	WeaknessTarget bool

	// Timestamp overrides the event time when non-zero (legacy import).
	Timestamp time.Time
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	Mode         string
	Operation    string
	Digits       int
	Adaptive     bool
	Questions    int
	Correct      int
	BestStreak   int
	AvgTime      float64
	DurationSecs int
}

// AchievementEventData captures a badge unlock.
type AchievementEventData struct {
	Code      string
	Name      string
	SessionID string
}

// AttemptRecord is a stored attempt returned by queries.
type AttemptRecord struct {
	AttemptID      int64
	SessionID      string
	Operation      string
	Digits         int
	Question       string
	Num1           int
	Num2           int
	UserAnswer     float64
	CorrectAnswer  float64
	Correct        bool
	TimeTaken      float64
	WeaknessTarget bool
	Timestamp      time.Time
}

// AttemptFilter narrows attempt queries. Zero values mean "all".
type AttemptFilter struct {
	Operation string
	Digits    int
	Limit     int
}

// SessionRecord is a finished session returned by queries.
type SessionRecord struct {
	SessionID    string
	Mode         string
	Operation    string
	Digits       int
	Adaptive     bool
	Questions    int
	Correct      int
	BestStreak   int
	AvgTime      float64
	DurationSecs int
	Timestamp    time.Time
}

// BreakdownRow aggregates performance for one operation/digit combination.
type BreakdownRow struct {
	Operation string
	Digits    int
	Count     int
	Correct   int
	AvgTime   float64
}

// DailyRow aggregates one calendar day of practice.
type DailyRow struct {
	Date    string // YYYY-MM-DD
	Count   int
	Correct int
	AvgTime float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a scored answer.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendAchievement records a badge unlock. Appending an already
	// unlocked code is an error (the code column is unique).
	AppendAchievement(ctx context.Context, data AchievementEventData) error

	// LastAttemptID returns the highest stored attempt id, 0 when the log
	// is empty. Seeds the orchestrator so ids continue across sessions.
	LastAttemptID(ctx context.Context) (int64, error)

	// ListAttempts returns attempts matching the filter, oldest first.
	ListAttempts(ctx context.Context, f AttemptFilter) ([]AttemptRecord, error)

	// ListSessions returns finished sessions, newest first.
	ListSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// UnlockedAchievements returns the set of unlocked badge codes.
	UnlockedAchievements(ctx context.Context) (map[string]bool, error)

	// TotalAttempts returns the size of the attempt log.
	TotalAttempts(ctx context.Context) (int, error)

	// PerformanceBreakdown aggregates the log by operation and digits.
	PerformanceBreakdown(ctx context.Context) ([]BreakdownRow, error)

	// DailyStats aggregates the most recent days of practice.
	DailyStats(ctx context.Context, days int) ([]DailyRow, error)
}

type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)
