package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// weaknessInjectRate is the probability that a generation call builds the
// question from the weakness pool instead of fresh synthesis. Checked once
// per call, before toughness-based generation.
const weaknessInjectRate = 0.25

// Generator produces arithmetic questions. The random source is injected so
// tests can pin distributions and reproduce edge cases.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng falls back to a time-seeded
// source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Generator{rng: rng}
}

// Generate produces a single question for the given operation, digit count
// and toughness tier. A non-empty weaknessPool is consulted first: with
// probability 0.25 the question is built directly from a uniformly chosen
// valid pool entry. Generate never fails; out-of-range inputs are clamped.
func (g *Generator) Generate(op Operation, digits, toughness int, weaknessPool []WeaknessEntry) Question {
	if digits < MinDigits {
		digits = MinDigits
	}
	if digits > MaxDigits {
		digits = MaxDigits
	}
	if toughness < ToughnessEasy {
		toughness = ToughnessEasy
	}
	if toughness > ToughnessHard {
		toughness = ToughnessHard
	}

	if op == OpMixed {
		op = BasicOperations[g.rng.IntN(len(BasicOperations))]
	}

	if op.Basic() {
		if candidates := validEntries(weaknessPool, op); len(candidates) > 0 && g.rng.Float64() < weaknessInjectRate {
			e := candidates[g.rng.IntN(len(candidates))]
			q := binaryQuestion(op, e.Num1, e.Num2, digits, toughness)
			q.WeaknessTarget = true
			return q
		}
	}

	switch op {
	case OpAddition:
		n1, n2 := g.addition(digits, toughness)
		return binaryQuestion(op, n1, n2, digits, toughness)
	case OpSubtraction:
		n1, n2 := g.subtraction(digits, toughness)
		return binaryQuestion(op, n1, n2, digits, toughness)
	case OpMultiplication:
		n1, n2 := g.multiplication(digits, toughness)
		return binaryQuestion(op, n1, n2, digits, toughness)
	case OpDivision:
		n1, n2 := g.division(digits, toughness)
		return binaryQuestion(op, n1, n2, digits, toughness)
	default:
		return g.complexQuestion(digits, toughness)
	}
}

// binaryQuestion assembles a Question from a binary operand pair.
func binaryQuestion(op Operation, n1, n2, digits, toughness int) Question {
	return Question{
		Operation: op,
		Display:   fmt.Sprintf("%d %s %d", n1, op.Symbol(), n2),
		Answer:    binaryAnswer(op, n1, n2),
		Digits:    digits,
		Toughness: toughness,
		Num1:      n1,
		Num2:      n2,
	}
}

// binaryAnswer evaluates the standard binary operator for op.
func binaryAnswer(op Operation, n1, n2 int) float64 {
	switch op {
	case OpAddition:
		return float64(n1 + n2)
	case OpSubtraction:
		return float64(n1 - n2)
	case OpMultiplication:
		return float64(n1 * n2)
	case OpDivision:
		return float64(n1) / float64(n2)
	}
	return 0
}

// randN returns a uniform n-digit number. The digit count is clamped to at
// least 1 so division synthesis at digits-1 stays well-defined.
func (g *Generator) randN(digits int) int {
	if digits < 1 {
		digits = 1
	}
	lo := 1
	for i := 1; i < digits; i++ {
		lo *= 10
	}
	hi := lo*10 - 1
	return lo + g.rng.IntN(hi-lo+1)
}

// randUpper returns an n-digit number biased into the upper half of the
// range.
func (g *Generator) randUpper(digits int) int {
	if digits < 1 {
		digits = 1
	}
	lo := 1
	for i := 1; i < digits; i++ {
		lo *= 10
	}
	hi := lo*10 - 1
	mid := (lo + hi + 1) / 2
	return mid + g.rng.IntN(hi-mid+1)
}

// addition synthesizes an operand pair for addition.
//
// Toughness 1 at 2 digits keeps every column low so no carry occurs;
// toughness 3 at 2 digits forces every digit high so a carry is guaranteed.
// Other combinations use uniform generation, rounded friendly at toughness 1
// and upper-half biased at toughness 3.
func (g *Generator) addition(digits, toughness int) (int, int) {
	switch {
	case toughness == ToughnessEasy && digits == 2:
		n1 := (1+g.rng.IntN(4))*10 + g.rng.IntN(5)
		n2 := (1+g.rng.IntN(4))*10 + g.rng.IntN(5)
		return n1, n2
	case toughness == ToughnessHard && digits == 2:
		n1 := (6+g.rng.IntN(4))*10 + 6 + g.rng.IntN(4)
		n2 := (6+g.rng.IntN(4))*10 + 6 + g.rng.IntN(4)
		return n1, n2
	case toughness == ToughnessEasy:
		n1 := g.randN(digits)
		n2 := g.randN(digits)
		if digits > 1 && g.rng.Float64() < 0.5 {
			n2 = friendlyRound(n2)
		}
		return n1, n2
	case toughness == ToughnessHard:
		return g.randUpper(digits), g.randUpper(digits)
	default:
		return g.randN(digits), g.randN(digits)
	}
}

// friendlyRound rounds n down to the nearest multiple of 10, keeping at
// least one ten.
func friendlyRound(n int) int {
	r := n / 10 * 10
	if r < 10 {
		r = 10
	}
	return r
}

// subtraction synthesizes a pair with the larger operand first, so the
// result is never negative. Toughness 1 at 2 digits constrains both columns
// so no borrowing occurs.
func (g *Generator) subtraction(digits, toughness int) (int, int) {
	if toughness == ToughnessEasy && digits == 2 {
		// Minuend digits strictly dominate subtrahend digits column-wise.
		n1 := (5+g.rng.IntN(5))*10 + 5 + g.rng.IntN(5)
		n2 := (1+g.rng.IntN(4))*10 + g.rng.IntN(5)
		return n1, n2
	}
	a := g.randN(digits)
	b := g.randN(digits)
	if b > a {
		a, b = b, a
	}
	return a, b
}

// friendlyFactors are the toughness-1 multiplication anchors.
var friendlyFactors = []int{2, 3, 5, 10}

// hardFactors force awkward times-table rows at toughness 3.
var hardFactors = []int{7, 8, 9}

// multiplication synthesizes a multiplication pair.
func (g *Generator) multiplication(digits, toughness int) (int, int) {
	switch toughness {
	case ToughnessEasy:
		n1 := g.randN(digits)
		n2 := friendlyFactors[g.rng.IntN(len(friendlyFactors))]
		return n1, n2
	case ToughnessHard:
		return hardFactors[g.rng.IntN(len(hardFactors))], hardFactors[g.rng.IntN(len(hardFactors))]
	default:
		d := digits
		if d > MaxDigits {
			d = MaxDigits
		}
		return g.randN(d), g.randN(d)
	}
}

// friendlyDivisors are the toughness-1 division anchors.
var friendlyDivisors = []int{2, 5, 10}

// division synthesizes the quotient first so the dividend is always an
// exact multiple of the divisor.
func (g *Generator) division(digits, toughness int) (int, int) {
	if toughness == ToughnessEasy {
		divisor := friendlyDivisors[g.rng.IntN(len(friendlyDivisors))]
		quotient := g.randN(digits - 1)
		return divisor * quotient, divisor
	}
	divisor := g.randN(digits - 1)
	quotient := g.randN(digits - 1)
	return divisor * quotient, divisor
}

// validEntries filters the weakness pool down to well-formed entries for
// the given operation. Malformed entries (missing operands, mismatched
// operation, inexact division pairs) are skipped, never selected.
func validEntries(pool []WeaknessEntry, op Operation) []WeaknessEntry {
	if len(pool) == 0 {
		return nil
	}
	out := make([]WeaknessEntry, 0, len(pool))
	for _, e := range pool {
		if !e.validFor(op) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// validFor reports whether the entry can safely drive generation for op.
func (e WeaknessEntry) validFor(op Operation) bool {
	if e.Op != op || !op.Basic() {
		return false
	}
	if e.Num1 <= 0 || e.Num2 <= 0 {
		return false
	}
	switch op {
	case OpSubtraction:
		return e.Num1 >= e.Num2
	case OpDivision:
		return e.Num1%e.Num2 == 0
	}
	return true
}
