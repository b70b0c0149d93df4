package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bucketsplit/internal/models"
	"bucketsplit/internal/storage"
)

// CreateExpense persists a new expense and its percentage split, if any.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	if expense.UpdatedAt == 0 {
		expense.UpdatedAt = expense.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var notes interface{}
	if expense.Notes != "" {
		notes = expense.Notes
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, bucket_id, title, amount, paid_by, split_type, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.BucketID, expense.Title, expense.Amount, expense.PaidBy,
		string(expense.Split.Type), notes, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertSplits(ctx, tx, "expense_splits", "expense_id", expense.ID, expense.Split.Percentages); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including its split mapping.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var splitType string
	var notes sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT id, bucket_id, title, amount, paid_by, split_type, notes, created_at, updated_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.BucketID, &expense.Title, &expense.Amount, &expense.PaidBy,
		&splitType, &notes, &expense.CreatedAt, &expense.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expense.Split.Type = models.SplitType(splitType)
	if notes.Valid {
		expense.Notes = notes.String
	}

	expense.Split.Percentages, err = s.loadSplits(ctx, "expense_splits", "expense_id", expenseID)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense replaces an existing expense and its split mapping.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var notes interface{}
	if expense.Notes != "" {
		notes = expense.Notes
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE expenses SET title = ?, amount = ?, paid_by = ?, split_type = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		expense.Title, expense.Amount, expense.PaidBy, string(expense.Split.Type),
		notes, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense splits: %w", err)
	}
	if err := insertSplits(ctx, tx, "expense_splits", "expense_id", expense.ID, expense.Split.Percentages); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}

	return nil
}

// ListExpenses retrieves a bucket's expenses in creation order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, bucketID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bucket_id, title, amount, paid_by, split_type, notes, created_at, updated_at
		 FROM expenses WHERE bucket_id = ? ORDER BY created_at, id`,
		bucketID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		var splitType string
		var notes sql.NullString
		if err := rows.Scan(&expense.ID, &expense.BucketID, &expense.Title, &expense.Amount,
			&expense.PaidBy, &splitType, &notes, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Split.Type = models.SplitType(splitType)
		if notes.Valid {
			expense.Notes = notes.String
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		expenses[i].Split.Percentages, err = s.loadSplits(ctx, "expense_splits", "expense_id", expenses[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return expenses, nil
}
