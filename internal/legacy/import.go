// Package legacy imports attempt history from the old attempts.json
// format into the event store.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/prajwalk/mathsprint/internal/store"
)

// File mirrors the legacy attempts.json layout.
type File struct {
	LastID   int64     `json:"lastId"`
	Attempts []Attempt `json:"attempts"`
}

// Attempt is one legacy record. Timestamp is Unix seconds, possibly
// fractional.
type Attempt struct {
	ID            int64   `json:"id"`
	Question      string  `json:"question"`
	Operation     string  `json:"operation"`
	Digits        int     `json:"digits"`
	UserAnswer    float64 `json:"userAnswer"`
	CorrectAnswer float64 `json:"correctAnswer"`
	IsCorrect     bool    `json:"isCorrect"`
	TimeTaken     float64 `json:"timeTaken"`
	Timestamp     float64 `json:"timestamp"`
}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
	LastID   int64
}

const schemaJSON = `{
	"type": "object",
	"properties": {
		"lastId": {"type": "integer", "minimum": 0},
		"attempts": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "integer"},
					"question": {"type": "string"},
					"operation": {"type": "string"},
					"digits": {"type": "integer"},
					"userAnswer": {"type": "number"},
					"correctAnswer": {"type": "number"},
					"isCorrect": {"type": "boolean"},
					"timeTaken": {"type": "number"},
					"timestamp": {"type": "number"}
				},
				"required": ["question", "operation"]
			}
		}
	},
	"required": ["attempts"]
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(schemaJSON), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse import schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://legacy-attempts.json", parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("schema://legacy-attempts.json")
	})
	return schema, schemaErr
}

// symbol-to-name map used by the old question strings.
var opSymbols = map[string]string{
	"+": "addition",
	"-": "subtraction",
	"−": "subtraction",
	"×": "multiplication",
	"*": "multiplication",
	"÷": "division",
	"/": "division",
}

// Importer copies legacy attempts into the event store.
type Importer struct {
	repo store.EventRepo
}

func NewImporter(repo store.EventRepo) *Importer {
	return &Importer{repo: repo}
}

// ImportFile reads, validates, and imports a legacy attempts.json.
func (im *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return im.Import(ctx, raw)
}

// Import validates raw legacy JSON and appends each usable attempt to
// the store. Records that can't be interpreted are counted as skipped
// rather than failing the whole run.
func (im *Importer) Import(ctx context.Context, raw []byte) (Result, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{}, fmt.Errorf("parse legacy file: %w", err)
	}
	compiled, err := compiledSchema()
	if err != nil {
		return Result{}, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return Result{}, fmt.Errorf("validate legacy file: %w", err)
	}

	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return Result{}, fmt.Errorf("decode legacy file: %w", err)
	}

	lastID, err := im.repo.LastAttemptID(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("last attempt id: %w", err)
	}

	var res Result
	for _, a := range file.Attempts {
		data, ok := convert(a)
		if !ok {
			res.Skipped++
			continue
		}
		// Ids restart after whatever is already stored so imports never
		// collide with native attempts.
		lastID++
		data.AttemptID = lastID
		if err := im.repo.AppendAttempt(ctx, data); err != nil {
			return res, fmt.Errorf("append attempt %d: %w", a.ID, err)
		}
		res.Imported++
	}
	res.LastID = lastID
	return res, nil
}

// convert maps a legacy record to event data, recovering the operand
// pair from the question string when possible.
func convert(a Attempt) (store.AttemptEventData, bool) {
	if a.Question == "" || a.Operation == "" {
		return store.AttemptEventData{}, false
	}

	digits := a.Digits
	if digits < 1 || digits > 3 {
		digits = 1
	}

	data := store.AttemptEventData{
		SessionID:     "legacy-import",
		Operation:     a.Operation,
		Digits:        digits,
		Question:      a.Question,
		UserAnswer:    a.UserAnswer,
		CorrectAnswer: a.CorrectAnswer,
		Correct:       a.IsCorrect,
		TimeTaken:     a.TimeTaken,
	}

	if n1, n2, op, ok := parseQuestion(a.Question); ok {
		data.Num1, data.Num2 = n1, n2
		if op != "" {
			data.Operation = op
		}
	}

	if a.Timestamp > 0 {
		sec, frac := math.Modf(a.Timestamp)
		data.Timestamp = time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
	}

	return data, true
}

// parseQuestion extracts "A op B" from a legacy question string, which
// may carry a trailing "= ?".
func parseQuestion(q string) (num1, num2 int, op string, ok bool) {
	q = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(q), "= ?"))
	parts := strings.Fields(q)
	if len(parts) < 3 {
		return 0, 0, "", false
	}
	n1, err1 := strconv.Atoi(parts[0])
	n2, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return 0, 0, "", false
	}
	return n1, n2, opSymbols[parts[1]], true
}
