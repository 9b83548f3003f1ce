package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
)

const (
	// A pair is weak when its accuracy drops below this fraction.
	weakAccuracy = 0.7

	// Or when its average answer time exceeds this multiple of the
	// global average.
	slowFactor = 1.5

	// Pairs need at least this many attempts before being judged.
	minAttempts = 2

	// At most this many weaknesses are reported, worst first.
	maxWeaknesses = 10
)

// Weakness is a number pair the user struggles with, with the metrics
// that flagged it.
type Weakness struct {
	Entry    engine.WeaknessEntry
	Reason   string // "accuracy" or "speed"
	Accuracy float64
	AvgTime  float64
	Attempts int
}

// Analyzer finds weak number pairs in the attempt log. It implements
// engine.WeaknessSource.
type Analyzer struct {
	repo store.EventRepo
}

func NewAnalyzer(repo store.EventRepo) *Analyzer {
	return &Analyzer{repo: repo}
}

var _ engine.WeaknessSource = (*Analyzer)(nil)

// Weaknesses returns the weak pairs for an operation and digit count as
// generator-ready entries, worst first.
func (a *Analyzer) Weaknesses(ctx context.Context, op engine.Operation, digits int) ([]engine.WeaknessEntry, error) {
	detailed, err := a.Analyze(ctx, op, digits)
	if err != nil {
		return nil, err
	}
	entries := make([]engine.WeaknessEntry, 0, len(detailed))
	for _, w := range detailed {
		entries = append(entries, w.Entry)
	}
	return entries, nil
}

// Analyze groups attempts by (num1, num2, operation) and flags pairs
// answered wrong too often or markedly slower than the user's average.
func (a *Analyzer) Analyze(ctx context.Context, op engine.Operation, digits int) ([]Weakness, error) {
	filter := store.AttemptFilter{Digits: digits}
	if op.Basic() {
		filter.Operation = string(op)
	}

	attempts, err := a.repo.ListAttempts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	type pairKey struct {
		num1, num2 int
		op         string
	}
	type pairStats struct {
		correct int
		total   int
		timeSum float64
		timed   int
	}

	stats := make(map[pairKey]*pairStats)
	var globalTimeSum float64
	var globalTimed int

	for _, rec := range attempts {
		// Complex questions have no single operand pair to drill.
		if rec.Num1 <= 0 || rec.Num2 <= 0 {
			continue
		}
		key := pairKey{rec.Num1, rec.Num2, rec.Operation}
		s := stats[key]
		if s == nil {
			s = &pairStats{}
			stats[key] = s
		}
		s.total++
		if rec.Correct {
			s.correct++
		}
		if rec.TimeTaken > 0 {
			s.timeSum += rec.TimeTaken
			s.timed++
			globalTimeSum += rec.TimeTaken
			globalTimed++
		}
	}

	globalAvg := 5.0
	if globalTimed > 0 {
		globalAvg = globalTimeSum / float64(globalTimed)
	}

	var out []Weakness
	for key, s := range stats {
		if s.total < minAttempts {
			continue
		}
		accuracy := float64(s.correct) / float64(s.total)
		var avgTime float64
		if s.timed > 0 {
			avgTime = s.timeSum / float64(s.timed)
		}

		var reason string
		switch {
		case accuracy < weakAccuracy:
			reason = "accuracy"
		case avgTime > globalAvg*slowFactor:
			reason = "speed"
		default:
			continue
		}

		out = append(out, Weakness{
			Entry: engine.WeaknessEntry{
				Op:   engine.Operation(key.op),
				Num1: key.num1,
				Num2: key.num2,
			},
			Reason:   reason,
			Accuracy: accuracy,
			AvgTime:  avgTime,
			Attempts: s.total,
		})
	}

	// Worst accuracy first, then slowest.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy < out[j].Accuracy
		}
		return out[i].AvgTime > out[j].AvgTime
	})

	if len(out) > maxWeaknesses {
		out = out[:maxWeaknesses]
	}
	return out, nil
}
