package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// insertSplits writes a percentage mapping to a split child table
// (expense_splits or credit_splits) inside an open transaction.
func insertSplits(ctx context.Context, tx *sql.Tx, table, idColumn, id string, percentages map[string]float64) error {
	for uid, pct := range percentages {
		_, err := tx.ExecContext(ctx,
			fmt.Sprintf("INSERT INTO %s (%s, uid, percentage) VALUES (?, ?, ?)", table, idColumn),
			id, uid, pct,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split row: %w", err)
		}
	}
	return nil
}

// loadSplits reads a percentage mapping back from a split child table.
// Returns nil for an empty mapping so even splits round-trip as nil.
func (s *SQLiteStore) loadSplits(ctx context.Context, table, idColumn, id string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT uid, percentage FROM %s WHERE %s = ?", table, idColumn),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load splits: %w", err)
	}
	defer rows.Close()

	var percentages map[string]float64
	for rows.Next() {
		var uid string
		var pct float64
		if err := rows.Scan(&uid, &pct); err != nil {
			return nil, fmt.Errorf("failed to scan split row: %w", err)
		}
		if percentages == nil {
			percentages = make(map[string]float64)
		}
		percentages[uid] = pct
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split rows: %w", err)
	}

	return percentages, nil
}
