package engine

import "fmt"

// Complex questions use one of eight fixed multi-operand patterns, chosen
// uniformly. Toughness is not varied within a pattern. Every pattern
// precomputes its answer, and division steps are constructed divisor-first
// so no non-integer intermediate ever appears.

type complexPattern func(g *Generator) (string, float64)

var complexPatterns = []complexPattern{
	threeTermAdd,
	multiplyThenAdd,
	chainedSubtraction,
	divideThenSubtract,
	mixedFourOperand,
	divideThenAdd,
	fourTermAdd,
	parenSumTimesFactor,
}

func (g *Generator) complexQuestion(digits, toughness int) Question {
	pattern := complexPatterns[g.rng.IntN(len(complexPatterns))]
	display, answer := pattern(g)
	return Question{
		Operation: OpComplex,
		Display:   display,
		Answer:    answer,
		Digits:    digits,
		Toughness: toughness,
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

func threeTermAdd(g *Generator) (string, float64) {
	a, b, c := g.between(5, 50), g.between(5, 50), g.between(5, 50)
	return fmt.Sprintf("%d + %d + %d", a, b, c), float64(a + b + c)
}

func multiplyThenAdd(g *Generator) (string, float64) {
	a, b := g.between(3, 12), g.between(3, 12)
	c := g.between(10, 99)
	return fmt.Sprintf("%d × %d + %d", a, b, c), float64(a*b + c)
}

// chainedSubtraction keeps each step feasible: the two subtrahends together
// never exceed the leading term.
func chainedSubtraction(g *Generator) (string, float64) {
	a := g.between(60, 150)
	b := g.between(5, a/3)
	c := g.between(5, a/3)
	return fmt.Sprintf("%d − %d − %d", a, b, c), float64(a - b - c)
}

func divideThenSubtract(g *Generator) (string, float64) {
	b := g.between(2, 9)
	q := g.between(2, 12)
	c := g.between(1, q)
	a := b * q
	return fmt.Sprintf("%d ÷ %d − %d", a, b, c), float64(q - c)
}

func mixedFourOperand(g *Generator) (string, float64) {
	a, b := g.between(2, 9), g.between(2, 9)
	c := g.between(10, 60)
	d := g.between(1, 10)
	return fmt.Sprintf("%d × %d + %d − %d", a, b, c, d), float64(a*b + c - d)
}

func divideThenAdd(g *Generator) (string, float64) {
	b := g.between(2, 9)
	q := g.between(2, 12)
	c := g.between(5, 50)
	a := b * q
	return fmt.Sprintf("%d ÷ %d + %d", a, b, c), float64(q + c)
}

func fourTermAdd(g *Generator) (string, float64) {
	a, b := g.between(5, 40), g.between(5, 40)
	c, d := g.between(5, 40), g.between(5, 40)
	return fmt.Sprintf("%d + %d + %d + %d", a, b, c, d), float64(a + b + c + d)
}

func parenSumTimesFactor(g *Generator) (string, float64) {
	a, b := g.between(2, 9), g.between(2, 9)
	c := g.between(2, 9)
	max := (a+b)*c - 1
	if max > 15 {
		max = 15
	}
	d := g.between(1, max)
	return fmt.Sprintf("(%d + %d) × %d − %d", a, b, c, d), float64((a+b)*c - d)
}
