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

// CreateCredit persists a new credit and its percentage split, if any.
func (s *SQLiteStore) CreateCredit(ctx context.Context, credit *models.Credit) error {
	if credit.ID == "" {
		credit.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if credit.CreatedAt == 0 {
		credit.CreatedAt = now
	}
	if credit.UpdatedAt == 0 {
		credit.UpdatedAt = credit.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var notes interface{}
	if credit.Notes != "" {
		notes = credit.Notes
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO credits (id, bucket_id, title, amount, received_by, split_type, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		credit.ID, credit.BucketID, credit.Title, credit.Amount, credit.ReceivedBy,
		string(credit.Split.Type), notes, credit.CreatedAt, credit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert credit: %w", err)
	}

	if err := insertSplits(ctx, tx, "credit_splits", "credit_id", credit.ID, credit.Split.Percentages); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetCredit retrieves a credit by ID, including its split mapping.
func (s *SQLiteStore) GetCredit(ctx context.Context, creditID string) (*models.Credit, error) {
	credit := &models.Credit{}
	var splitType string
	var notes sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT id, bucket_id, title, amount, received_by, split_type, notes, created_at, updated_at
		 FROM credits WHERE id = ?`,
		creditID,
	).Scan(&credit.ID, &credit.BucketID, &credit.Title, &credit.Amount, &credit.ReceivedBy,
		&splitType, &notes, &credit.CreatedAt, &credit.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("credit %s: %w", creditID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credit: %w", err)
	}

	credit.Split.Type = models.SplitType(splitType)
	if notes.Valid {
		credit.Notes = notes.String
	}

	credit.Split.Percentages, err = s.loadSplits(ctx, "credit_splits", "credit_id", creditID)
	if err != nil {
		return nil, err
	}

	return credit, nil
}

// UpdateCredit replaces an existing credit and its split mapping.
func (s *SQLiteStore) UpdateCredit(ctx context.Context, credit *models.Credit) error {
	credit.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var notes interface{}
	if credit.Notes != "" {
		notes = credit.Notes
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE credits SET title = ?, amount = ?, received_by = ?, split_type = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		credit.Title, credit.Amount, credit.ReceivedBy, string(credit.Split.Type),
		notes, credit.UpdatedAt, credit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update credit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("credit %s: %w", credit.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM credit_splits WHERE credit_id = ?", credit.ID); err != nil {
		return fmt.Errorf("failed to clear credit splits: %w", err)
	}
	if err := insertSplits(ctx, tx, "credit_splits", "credit_id", credit.ID, credit.Split.Percentages); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteCredit removes a credit by ID.
func (s *SQLiteStore) DeleteCredit(ctx context.Context, creditID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM credits WHERE id = ?", creditID)
	if err != nil {
		return fmt.Errorf("failed to delete credit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("credit %s: %w", creditID, storage.ErrNotFound)
	}

	return nil
}

// ListCredits retrieves a bucket's credits in creation order.
func (s *SQLiteStore) ListCredits(ctx context.Context, bucketID string) ([]models.Credit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bucket_id, title, amount, received_by, split_type, notes, created_at, updated_at
		 FROM credits WHERE bucket_id = ? ORDER BY created_at, id`,
		bucketID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	var credits []models.Credit
	for rows.Next() {
		var credit models.Credit
		var splitType string
		var notes sql.NullString
		if err := rows.Scan(&credit.ID, &credit.BucketID, &credit.Title, &credit.Amount,
			&credit.ReceivedBy, &splitType, &notes, &credit.CreatedAt, &credit.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		credit.Split.Type = models.SplitType(splitType)
		if notes.Valid {
			credit.Notes = notes.String
		}
		credits = append(credits, credit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credits: %w", err)
	}

	for i := range credits {
		credits[i].Split.Percentages, err = s.loadSplits(ctx, "credit_splits", "credit_id", credits[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return credits, nil
}
