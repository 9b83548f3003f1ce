package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAchievement(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetCode(data.Code).
		SetName(data.Name).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) UnlockedAchievements(ctx context.Context) (map[string]bool, error) {
	events, err := r.client.AchievementEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	unlocked := make(map[string]bool, len(events))
	for _, e := range events {
		unlocked[e.Code] = true
	}
	return unlocked, nil
}
