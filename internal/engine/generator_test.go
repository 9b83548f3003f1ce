package engine

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// evalDisplay evaluates a question display as a standard arithmetic
// expression: one level of parentheses, × and ÷ before + and −.
func evalDisplay(t *testing.T, display string) float64 {
	t.Helper()

	// Collapse a single parenthesized group first.
	if open := strings.Index(display, "("); open >= 0 {
		close := strings.Index(display, ")")
		if close < open {
			t.Fatalf("malformed display %q", display)
		}
		inner := evalDisplay(t, display[open+1:close])
		display = display[:open] + strconv.FormatFloat(inner, 'f', -1, 64) + display[close+1:]
	}

	fields := strings.Fields(display)
	if len(fields)%2 != 1 {
		t.Fatalf("malformed display %q", display)
	}

	nums := make([]float64, 0, len(fields)/2+1)
	ops := make([]string, 0, len(fields)/2)
	for i, f := range fields {
		if i%2 == 0 {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				t.Fatalf("parse %q in %q: %v", f, display, err)
			}
			nums = append(nums, v)
		} else {
			ops = append(ops, f)
		}
	}

	// First pass: × and ÷.
	for i := 0; i < len(ops); {
		switch ops[i] {
		case "×":
			nums[i] = nums[i] * nums[i+1]
		case "÷":
			nums[i] = nums[i] / nums[i+1]
		default:
			i++
			continue
		}
		nums = append(nums[:i+1], nums[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
	}

	// Second pass: + and −.
	result := nums[0]
	for i, op := range ops {
		switch op {
		case "+":
			result += nums[i+1]
		case "−":
			result -= nums[i+1]
		default:
			t.Fatalf("unknown operator %q in %q", op, display)
		}
	}
	return result
}

func TestGenerateDisplayMatchesAnswer(t *testing.T) {
	g := NewGenerator(testRNG(1))
	operations := []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}

	for _, op := range operations {
		for digits := 1; digits <= 3; digits++ {
			for toughness := 1; toughness <= 3; toughness++ {
				for i := 0; i < 200; i++ {
					q := g.Generate(op, digits, toughness, nil)
					got := evalDisplay(t, q.Display)
					if math.Abs(got-q.Answer) > 1e-9 {
						t.Fatalf("%s d=%d t=%d: display %q evaluates to %v, answer %v",
							op, digits, toughness, q.Display, got, q.Answer)
					}
				}
			}
		}
	}
}

func TestDivisionAlwaysExact(t *testing.T) {
	g := NewGenerator(testRNG(2))
	for i := 0; i < 10000; i++ {
		digits := 1 + i%3
		toughness := 1 + i%3
		q := g.Generate(OpDivision, digits, toughness, nil)
		if q.Num2 == 0 {
			t.Fatalf("zero divisor in %q", q.Display)
		}
		if q.Num1%q.Num2 != 0 {
			t.Fatalf("inexact division %d ÷ %d", q.Num1, q.Num2)
		}
	}
}

func TestSubtractionNeverNegative(t *testing.T) {
	g := NewGenerator(testRNG(3))
	for i := 0; i < 5000; i++ {
		q := g.Generate(OpSubtraction, 1+i%3, 1+i%3, nil)
		if q.Answer < 0 {
			t.Fatalf("negative subtraction result: %q = %v", q.Display, q.Answer)
		}
	}
}

func TestAdditionEasyTwoDigitNoCarry(t *testing.T) {
	g := NewGenerator(testRNG(4))
	for i := 0; i < 2000; i++ {
		q := g.Generate(OpAddition, 2, ToughnessEasy, nil)
		if q.Num1%10+q.Num2%10 >= 10 {
			t.Fatalf("ones carry in easy question %q", q.Display)
		}
		if q.Num1/10+q.Num2/10 >= 10 {
			t.Fatalf("tens carry in easy question %q", q.Display)
		}
	}
}

func TestAdditionHardTwoDigitForcesCarry(t *testing.T) {
	g := NewGenerator(testRNG(5))
	for i := 0; i < 2000; i++ {
		q := g.Generate(OpAddition, 2, ToughnessHard, nil)
		if q.Num1%10+q.Num2%10 < 10 {
			t.Fatalf("no carry in hard question %q", q.Display)
		}
	}
}

func TestSubtractionEasyTwoDigitNoBorrow(t *testing.T) {
	g := NewGenerator(testRNG(6))
	for i := 0; i < 2000; i++ {
		q := g.Generate(OpSubtraction, 2, ToughnessEasy, nil)
		if q.Num1%10 < q.Num2%10 {
			t.Fatalf("ones borrow in easy question %q", q.Display)
		}
		if q.Num1/10 < q.Num2/10 {
			t.Fatalf("tens borrow in easy question %q", q.Display)
		}
	}
}

func TestMultiplicationTiers(t *testing.T) {
	g := NewGenerator(testRNG(7))

	friendly := map[int]bool{2: true, 3: true, 5: true, 10: true}
	for i := 0; i < 1000; i++ {
		q := g.Generate(OpMultiplication, 2, ToughnessEasy, nil)
		if !friendly[q.Num1] && !friendly[q.Num2] {
			t.Fatalf("easy multiplication %q has no friendly factor", q.Display)
		}
	}

	hard := map[int]bool{7: true, 8: true, 9: true}
	for i := 0; i < 1000; i++ {
		q := g.Generate(OpMultiplication, 2, ToughnessHard, nil)
		if !hard[q.Num1] || !hard[q.Num2] {
			t.Fatalf("hard multiplication %q outside {7,8,9}", q.Display)
		}
	}
}

func TestWeaknessInjectionRate(t *testing.T) {
	g := NewGenerator(testRNG(8))
	pool := []WeaknessEntry{
		{Op: OpAddition, Num1: 17, Num2: 48},
		{Op: OpAddition, Num1: 29, Num2: 36},
	}

	const trials = 10000
	hits := 0
	for i := 0; i < trials; i++ {
		q := g.Generate(OpAddition, 2, ToughnessMedium, pool)
		if q.WeaknessTarget {
			hits++
			if !(q.Num1 == 17 && q.Num2 == 48) && !(q.Num1 == 29 && q.Num2 == 36) {
				t.Fatalf("weakness question %q not built from pool", q.Display)
			}
		}
	}

	rate := float64(hits) / trials
	if math.Abs(rate-0.25) > 0.02 {
		t.Fatalf("injection rate = %.4f, want 0.25 ± 0.02", rate)
	}
}

func TestMalformedWeaknessEntriesSkipped(t *testing.T) {
	g := NewGenerator(testRNG(9))
	pool := []WeaknessEntry{
		{Op: OpAddition, Num1: 0, Num2: 5},         // missing operand
		{Op: OpDivision, Num1: 7, Num2: 3},         // inexact pair
		{Op: OpSubtraction, Num1: 3, Num2: 9},      // negative result
		{Op: OpMultiplication, Num1: 6, Num2: 7},   // wrong operation
		{Op: "", Num1: 4, Num2: 4},                 // missing operation
	}
	for i := 0; i < 3000; i++ {
		q := g.Generate(OpAddition, 2, ToughnessMedium, pool)
		if q.WeaknessTarget {
			t.Fatalf("selected malformed pool entry for %q", q.Display)
		}
	}
}

func TestDivisionDigitClamp(t *testing.T) {
	g := NewGenerator(testRNG(10))
	for i := 0; i < 1000; i++ {
		q := g.Generate(OpDivision, 1, 1+i%3, nil)
		if q.Num2 < 1 || q.Num1 < 1 {
			t.Fatalf("degenerate 1-digit division %q", q.Display)
		}
	}
}

func TestMixedResolvesToBasicOperation(t *testing.T) {
	g := NewGenerator(testRNG(11))
	seen := map[Operation]bool{}
	for i := 0; i < 2000; i++ {
		q := g.Generate(OpMixed, 2, ToughnessMedium, nil)
		if !q.Operation.Basic() {
			t.Fatalf("mixed question resolved to %q", q.Operation)
		}
		seen[q.Operation] = true
	}
	for _, op := range BasicOperations {
		if !seen[op] {
			t.Errorf("mixed mode never produced %s", op)
		}
	}
}
