package store

// Aggregate queries over the attempt log. Raw SQL rather than ent because
// ent's aggregation API can't express the grouped AVG/SUM combinations in
// one pass.

import (
	"context"
	"fmt"
)

func (r *eventRepo) PerformanceBreakdown(ctx context.Context) ([]BreakdownRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT operation, digits, COUNT(*), SUM(correct), COALESCE(AVG(time_taken), 0)
		FROM attempt_events
		GROUP BY operation, digits
		ORDER BY operation, digits`)
	if err != nil {
		return nil, fmt.Errorf("performance breakdown: %w", err)
	}
	defer rows.Close()

	var out []BreakdownRow
	for rows.Next() {
		var b BreakdownRow
		if err := rows.Scan(&b.Operation, &b.Digits, &b.Count, &b.Correct, &b.AvgTime); err != nil {
			return nil, fmt.Errorf("scan breakdown row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *eventRepo) DailyStats(ctx context.Context, days int) ([]DailyRow, error) {
	if days <= 0 {
		days = 7
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT date(timestamp), COUNT(*), SUM(correct), COALESCE(AVG(time_taken), 0)
		FROM attempt_events
		WHERE date(timestamp) >= date('now', '-%d days')
		GROUP BY date(timestamp)
		ORDER BY date(timestamp)`, days))
	if err != nil {
		return nil, fmt.Errorf("daily stats: %w", err)
	}
	defer rows.Close()

	var out []DailyRow
	for rows.Next() {
		var d DailyRow
		if err := rows.Scan(&d.Date, &d.Count, &d.Correct, &d.AvgTime); err != nil {
			return nil, fmt.Errorf("scan daily row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
