package achievements

import (
	"context"
	"fmt"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
)

// Service checks session results against badge criteria and persists
// unlocks.
type Service struct {
	eventRepo store.EventRepo
	unlocked  map[string]bool
}

// NewService creates an achievement service seeded with the already
// unlocked badge codes.
func NewService(ctx context.Context, eventRepo store.EventRepo) (*Service, error) {
	unlocked, err := eventRepo.UnlockedAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load unlocked achievements: %w", err)
	}
	return &Service{eventRepo: eventRepo, unlocked: unlocked}, nil
}

// CheckSession evaluates a finished session and returns badges newly
// unlocked by it.
func (s *Service) CheckSession(ctx context.Context, sum engine.Summary, sessionID string) ([]Badge, error) {
	var unlocked []Badge

	try := func(code string, earned bool) error {
		if !earned || s.unlocked[code] {
			return nil
		}
		badge, ok := badgeByCode(code)
		if !ok {
			return fmt.Errorf("unknown badge code %q", code)
		}
		err := s.eventRepo.AppendAchievement(ctx, store.AchievementEventData{
			Code:      code,
			Name:      badge.Name,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("unlock %s: %w", code, err)
		}
		s.unlocked[code] = true
		unlocked = append(unlocked, badge)
		return nil
	}

	checks := []struct {
		code   string
		earned bool
	}{
		{CodeFirstWin, sum.Questions > 0},
		{CodeSniper, sum.Questions >= 20 && sum.Correct == sum.Questions},
		{CodeSpeedDemon, sum.Questions >= 20 && sum.AvgTime > 0 && sum.AvgTime < 2.0},
		{CodeMarathon, sum.Questions >= 50},
		{CodeMasterMind, sum.Config.Operation == engine.OpMixed && sum.Questions >= 20 && sum.Accuracy >= 0.9},
	}
	for _, c := range checks {
		if err := try(c.code, c.earned); err != nil {
			return unlocked, err
		}
	}

	// Centurion looks at the whole attempt log, not just this session.
	if !s.unlocked[CodeCenturion] {
		total, err := s.eventRepo.TotalAttempts(ctx)
		if err != nil {
			return unlocked, fmt.Errorf("total attempts: %w", err)
		}
		if err := try(CodeCenturion, total >= 100); err != nil {
			return unlocked, err
		}
	}

	return unlocked, nil
}

// All returns every badge with its unlock state, in display order.
func (s *Service) All() []Status {
	out := make([]Status, 0, len(Badges))
	for _, b := range Badges {
		out = append(out, Status{Badge: b, Unlocked: s.unlocked[b.Code]})
	}
	return out
}
