package store

import (
	"context"
	"fmt"
	"math"

	"github.com/prajwalk/mathsprint/ent"
	"github.com/prajwalk/mathsprint/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	// SQLite cannot round-trip NaN; a failed parse is stored as 0 and the
	// correctness flag carries the outcome.
	userAnswer := data.UserAnswer
	if math.IsNaN(userAnswer) || math.IsInf(userAnswer, 0) {
		userAnswer = 0
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetSessionID(data.SessionID).
		SetOperation(data.Operation).
		SetDigits(data.Digits).
		SetQuestion(data.Question).
		SetNum1(data.Num1).
		SetNum2(data.Num2).
		SetUserAnswer(userAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetTimeTaken(data.TimeTaken).
		SetWeaknessTarget(data.WeaknessTarget)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) LastAttemptID(ctx context.Context) (int64, error) {
	ae, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldAttemptID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query last attempt id: %w", err)
	}
	return ae.AttemptID, nil
}

func (r *eventRepo) ListAttempts(ctx context.Context, f AttemptFilter) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query()
	if f.Operation != "" {
		q = q.Where(attemptevent.Operation(f.Operation))
	}
	if f.Digits != 0 {
		q = q.Where(attemptevent.Digits(f.Digits))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	events, err := q.Order(ent.Asc(attemptevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			AttemptID:      e.AttemptID,
			SessionID:      e.SessionID,
			Operation:      e.Operation,
			Digits:         e.Digits,
			Question:       e.Question,
			Num1:           e.Num1,
			Num2:           e.Num2,
			UserAnswer:     e.UserAnswer,
			CorrectAnswer:  e.CorrectAnswer,
			Correct:        e.Correct,
			TimeTaken:      e.TimeTaken,
			WeaknessTarget: e.WeaknessTarget,
			Timestamp:      e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) TotalAttempts(ctx context.Context) (int, error) {
	n, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
