package engine

import "time"

// Operation identifies the arithmetic operation a question drills.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
	OpComplex        Operation = "complex"

	// OpMixed picks a uniform basic operation per question.
	OpMixed Operation = "mixed"
)

// BasicOperations are the four binary operations. Complex and mixed
// questions resolve to these at generation time.
var BasicOperations = []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}

// Valid reports whether op is a recognized session operation.
func (op Operation) Valid() bool {
	switch op {
	case OpAddition, OpSubtraction, OpMultiplication, OpDivision, OpComplex, OpMixed:
		return true
	}
	return false
}

// Basic reports whether op is one of the four binary operations.
func (op Operation) Basic() bool {
	switch op {
	case OpAddition, OpSubtraction, OpMultiplication, OpDivision:
		return true
	}
	return false
}

// Symbol returns the display glyph used in question expressions.
func (op Operation) Symbol() string {
	switch op {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "−"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	}
	return "?"
}

// Toughness tiers. Decoupled from the adaptive level: the level feeds
// toughness selection but a question's tier may be forced down by mixing.
const (
	ToughnessEasy   = 1
	ToughnessMedium = 2
	ToughnessHard   = 3
)

const (
	MinDigits = 1
	MaxDigits = 3
)

// Question is a single generated arithmetic question. Immutable once
// generated; owned by the orchestrator until the attempt is scored.
type Question struct {
	ID        int64
	Operation Operation
	Display   string
	Answer    float64
	Digits    int
	Toughness int

	// Num1 and Num2 are the binary operands. Zero for complex patterns,
	// which have no single operand pair.
	Num1 int
	Num2 int

	// WeaknessTarget marks a question built from a known-weak operand
	// pair instead of fresh synthesis.
	WeaknessTarget bool
}

// Attempt is the scored record of one submitted answer. Appended to the
// session log and handed to the persistence sink.
type Attempt struct {
	ID            int64
	Operation     Operation
	Digits        int
	Question      string
	Num1          int
	Num2          int
	UserAnswer    float64
	CorrectAnswer float64
	Correct       bool
	TimeTaken     float64 // seconds, paused intervals excluded
	Timestamp     time.Time
}

// WeaknessEntry is an operand pair known to be weak for an operation.
// Supplied by an external analyzer; read-only to the engine.
type WeaknessEntry struct {
	Op   Operation `json:"op"`
	Num1 int       `json:"num1"`
	Num2 int       `json:"num2"`
}
