package engine

import "context"

// WeaknessSource supplies known-weak operand pairs for an operation/digit
// selection. Implemented outside the engine (the analytics package queries
// the attempt log); the engine only consumes.
type WeaknessSource interface {
	Weaknesses(ctx context.Context, op Operation, digits int) ([]WeaknessEntry, error)
}

// WeaknessSelector holds the last-fetched pool for the current session
// scope. The pool defaults to empty until a refresh resolves, so question
// generation silently falls back to normal synthesis when the source is
// slow or unavailable.
type WeaknessSelector struct {
	op     Operation
	digits int
	pool   []WeaknessEntry
}

// NewWeaknessSelector returns a selector with an empty pool.
func NewWeaknessSelector() *WeaknessSelector {
	return &WeaknessSelector{}
}

// Scope resets the selector for a new session configuration. Any pool from
// a previous operation/digit selection is discarded.
func (s *WeaknessSelector) Scope(op Operation, digits int) {
	s.op = op
	s.digits = digits
	s.pool = nil
}

// SetPool installs a fetched pool. A response for a stale scope (the
// session moved to a different operation or digit count before the fetch
// resolved) is dropped.
func (s *WeaknessSelector) SetPool(op Operation, digits int, entries []WeaknessEntry) {
	if op != s.op || digits != s.digits {
		return
	}
	s.pool = entries
}

// Pool returns the current pool. Empty until a refresh has resolved.
func (s *WeaknessSelector) Pool() []WeaknessEntry {
	return s.pool
}
