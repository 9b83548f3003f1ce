package analytics

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
)

// MasteryLevel grades a (operation, digits) skill cell.
type MasteryLevel string

const (
	LevelNovice     MasteryLevel = "Novice"
	LevelApprentice MasteryLevel = "Apprentice"
	LevelPro        MasteryLevel = "Pro"
	LevelMaster     MasteryLevel = "Master"
)

// SkillCell is the graded performance of one operation/digit combination.
type SkillCell struct {
	Operation engine.Operation
	Digits    int
	Count     int
	Accuracy  float64 // percent
	AvgTime   float64 // seconds
	Level     MasteryLevel
}

// Recommendation points the user at the skill cell to practice next.
type Recommendation struct {
	Operation engine.Operation
	Digits    int
	Reason    string
	Level     MasteryLevel
}

// Coach grades the user's skill grid and picks what to practice next.
type Coach struct {
	repo store.EventRepo
	rng  *rand.Rand
}

// NewCoach builds a coach. A nil rng gets a time-seeded source.
func NewCoach(repo store.EventRepo, rng *rand.Rand) *Coach {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Coach{repo: repo, rng: rng}
}

// Grid grades every basic operation/digit combination. Cells with no
// attempts are Novice with zero counts.
func (c *Coach) Grid(ctx context.Context) ([]SkillCell, error) {
	rows, err := c.repo.PerformanceBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("performance breakdown: %w", err)
	}

	byKey := make(map[string]store.BreakdownRow, len(rows))
	for _, row := range rows {
		byKey[fmt.Sprintf("%s/%d", row.Operation, row.Digits)] = row
	}

	var cells []SkillCell
	for _, op := range engine.BasicOperations {
		for d := engine.MinDigits; d <= engine.MaxDigits; d++ {
			cell := SkillCell{Operation: op, Digits: d, Level: LevelNovice}
			if row, ok := byKey[fmt.Sprintf("%s/%d", op, d)]; ok {
				cell.Count = row.Count
				if row.Count > 0 {
					cell.Accuracy = float64(row.Correct) / float64(row.Count) * 100
				}
				cell.AvgTime = row.AvgTime
				cell.Level = gradeCell(cell)
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

// gradeCell maps raw stats to a mastery level. Master additionally
// requires speed under a per-digit ceiling.
func gradeCell(c SkillCell) MasteryLevel {
	switch {
	case c.Count < 10:
		return LevelNovice
	case c.Accuracy < 85:
		return LevelApprentice
	case c.Accuracy >= 95 && c.AvgTime < masterSpeed(c.Digits):
		return LevelMaster
	default:
		return LevelPro
	}
}

func masterSpeed(digits int) float64 {
	switch digits {
	case 1:
		return 4.0
	case 2:
		return 8.0
	default:
		return 15.0
	}
}

// Recommend scores every skill cell and picks randomly among the top
// three so repeat visits don't always drill the same cell.
func (c *Coach) Recommend(ctx context.Context) (Recommendation, error) {
	cells, err := c.Grid(ctx)
	if err != nil {
		return Recommendation{}, err
	}

	type candidate struct {
		rec   Recommendation
		score float64
	}
	candidates := make([]candidate, 0, len(cells))
	for _, cell := range cells {
		var score float64
		var reason string
		switch cell.Level {
		case LevelNovice:
			score = 80
			reason = "Let's learn the basics"
		case LevelApprentice:
			score = 100 - cell.Accuracy + 50
			reason = fmt.Sprintf("Fix accuracy (%.1f%%)", cell.Accuracy)
		case LevelPro:
			score = 40 + cell.AvgTime*2
			reason = fmt.Sprintf("Push for speed (avg %.1fs)", cell.AvgTime)
		case LevelMaster:
			score = 10
			reason = "Maintenance drill"
		}
		candidates = append(candidates, candidate{
			rec: Recommendation{
				Operation: cell.Operation,
				Digits:    cell.Digits,
				Reason:    reason,
				Level:     cell.Level,
			},
			score: score,
		})
	}

	if len(candidates) == 0 {
		return Recommendation{
			Operation: engine.OpAddition,
			Digits:    1,
			Reason:    "Get started!",
			Level:     LevelNovice,
		}, nil
	}

	// Stable-sort by score descending; cells are already in a fixed
	// operation/digit order so ties stay deterministic.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].score > candidates[j-1].score; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	top := candidates
	if len(top) > 3 {
		top = top[:3]
	}
	return top[c.rng.IntN(len(top))].rec, nil
}
