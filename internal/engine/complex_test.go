package engine

import (
	"math"
	"strings"
	"testing"
)

func TestComplexDisplayMatchesAnswer(t *testing.T) {
	g := NewGenerator(testRNG(20))
	for i := 0; i < 5000; i++ {
		q := g.Generate(OpComplex, 2, ToughnessMedium, nil)
		got := evalDisplay(t, q.Display)
		if math.Abs(got-q.Answer) > 1e-9 {
			t.Fatalf("complex display %q evaluates to %v, answer %v", q.Display, got, q.Answer)
		}
	}
}

func TestComplexDivisionStepsExact(t *testing.T) {
	g := NewGenerator(testRNG(21))
	for i := 0; i < 5000; i++ {
		q := g.Generate(OpComplex, 2, ToughnessMedium, nil)
		if !strings.Contains(q.Display, "÷") {
			continue
		}
		if q.Answer != math.Trunc(q.Answer) {
			t.Fatalf("division pattern %q produced non-integer answer %v", q.Display, q.Answer)
		}
	}
}

func TestChainedSubtractionFeasible(t *testing.T) {
	g := NewGenerator(testRNG(22))
	for i := 0; i < 20000; i++ {
		display, answer := chainedSubtraction(g)
		if answer < 0 {
			t.Fatalf("chained subtraction %q went negative: %v", display, answer)
		}
	}
}

func TestAllPatternsAppear(t *testing.T) {
	g := NewGenerator(testRNG(23))
	counts := make(map[string]int)
	for i := 0; i < 4000; i++ {
		q := g.Generate(OpComplex, 2, ToughnessMedium, nil)
		// Classify by operator shape, enough to distinguish the eight.
		key := ""
		for _, r := range q.Display {
			switch r {
			case '+', '−', '×', '÷', '(':
				key += string(r)
			}
		}
		counts[key]++
	}
	if len(counts) != len(complexPatterns) {
		t.Fatalf("saw %d distinct patterns, want %d: %v", len(counts), len(complexPatterns), counts)
	}
}
