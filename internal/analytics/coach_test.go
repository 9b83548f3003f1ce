package analytics

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
)

func coachRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 7))
}

func TestGradeCell(t *testing.T) {
	tests := []struct {
		name string
		cell SkillCell
		want MasteryLevel
	}{
		{"too few attempts", SkillCell{Count: 9, Accuracy: 100, AvgTime: 1}, LevelNovice},
		{"low accuracy", SkillCell{Count: 20, Accuracy: 70, AvgTime: 3}, LevelApprentice},
		{"accurate but slow", SkillCell{Count: 20, Accuracy: 96, AvgTime: 9, Digits: 2}, LevelPro},
		{"accurate and fast", SkillCell{Count: 20, Accuracy: 96, AvgTime: 5, Digits: 2}, LevelMaster},
		{"fast single digit master", SkillCell{Count: 20, Accuracy: 95, AvgTime: 3.5, Digits: 1}, LevelMaster},
		{"mid accuracy", SkillCell{Count: 20, Accuracy: 90, AvgTime: 2, Digits: 1}, LevelPro},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeCell(tt.cell); got != tt.want {
				t.Errorf("gradeCell() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridCoversAllCells(t *testing.T) {
	repo := &mockEventRepo{breakdown: []store.BreakdownRow{
		{Operation: "addition", Digits: 1, Count: 20, Correct: 20, AvgTime: 2},
	}}

	cells, err := NewCoach(repo, coachRNG()).Grid(context.Background())
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	// 4 basic operations x 3 digit levels.
	if len(cells) != 12 {
		t.Fatalf("got %d cells, want 12", len(cells))
	}

	var graded int
	for _, c := range cells {
		if c.Operation == engine.OpAddition && c.Digits == 1 {
			if c.Level != LevelMaster {
				t.Errorf("addition/1 level = %v, want Master", c.Level)
			}
			graded++
			continue
		}
		if c.Level != LevelNovice || c.Count != 0 {
			t.Errorf("%s/%d = %v count %d, want empty Novice", c.Operation, c.Digits, c.Level, c.Count)
		}
	}
	if graded != 1 {
		t.Fatalf("addition/1 appeared %d times, want 1", graded)
	}
}

func TestRecommendPrioritizesApprentice(t *testing.T) {
	// One Apprentice cell at 60% accuracy scores 90, above the Novice 80
	// baseline, so it must appear among the picks.
	repo := &mockEventRepo{breakdown: []store.BreakdownRow{
		{Operation: "subtraction", Digits: 2, Count: 20, Correct: 12, AvgTime: 5},
	}}
	coach := NewCoach(repo, coachRNG())

	seen := false
	for i := 0; i < 50; i++ {
		rec, err := coach.Recommend(context.Background())
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		if rec.Operation == engine.OpSubtraction && rec.Digits == 2 {
			if rec.Level != LevelApprentice {
				t.Fatalf("level = %v, want Apprentice", rec.Level)
			}
			seen = true
		}
	}
	if !seen {
		t.Fatal("apprentice cell never recommended over 50 draws")
	}
}

func TestRecommendAvoidsMasterCells(t *testing.T) {
	// Master cells score 10; with Novice cells at 80 they never make the
	// top three.
	repo := &mockEventRepo{breakdown: []store.BreakdownRow{
		{Operation: "addition", Digits: 1, Count: 50, Correct: 50, AvgTime: 2},
	}}
	coach := NewCoach(repo, coachRNG())

	for i := 0; i < 50; i++ {
		rec, err := coach.Recommend(context.Background())
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		if rec.Operation == engine.OpAddition && rec.Digits == 1 {
			t.Fatal("mastered cell recommended while novice cells remain")
		}
	}
}
