package store

import (
	"context"
	"fmt"

	"github.com/prajwalk/mathsprint/ent"
	"github.com/prajwalk/mathsprint/ent/sessionevent"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetOperation(data.Operation).
		SetDigits(data.Digits).
		SetAdaptive(data.Adaptive).
		SetQuestions(data.Questions).
		SetCorrect(data.Correct).
		SetBestStreak(data.BestStreak).
		SetAvgTime(data.AvgTime).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// ListSessions returns finished sessions, newest first.
func (r *eventRepo) ListSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:    e.SessionID,
			Mode:         e.Mode,
			Operation:    e.Operation,
			Digits:       e.Digits,
			Adaptive:     e.Adaptive,
			Questions:    e.Questions,
			Correct:      e.Correct,
			BestStreak:   e.BestStreak,
			AvgTime:      e.AvgTime,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return records, nil
}
