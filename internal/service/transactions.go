package service

import (
	"context"
	"log/slog"
	"strings"

	"bucketsplit/internal/models"
)

// ExpenseInput is the caller-supplied part of an expense.
type ExpenseInput struct {
	Title  string             `json:"title"`
	Amount float64            `json:"amount"`
	PaidBy string             `json:"paidBy"`
	Split  models.SplitConfig `json:"split"`
	Notes  string             `json:"notes"`
}

// CreditInput is the caller-supplied part of a credit.
type CreditInput struct {
	Title      string             `json:"title"`
	Amount     float64            `json:"amount"`
	ReceivedBy string             `json:"receivedBy"`
	Split      models.SplitConfig `json:"split"`
	Notes      string             `json:"notes"`
}

// RecordExpense validates and persists a new expense in a bucket.
func (s *BucketService) RecordExpense(ctx context.Context, bucketID string, in ExpenseInput) (*models.Expense, error) {
	bucket, err := s.store.GetBucket(ctx, bucketID)
	if err != nil {
		return nil, err
	}
	split, err := validateTransaction(in.Amount, in.PaidBy, in.Split, bucket)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		BucketID: bucketID,
		Title:    strings.TrimSpace(in.Title),
		Amount:   in.Amount,
		PaidBy:   in.PaidBy,
		Split:    split,
		Notes:    strings.TrimSpace(in.Notes),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense recorded",
		"bucket_id", bucketID,
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"split_type", expense.Split.Type,
	)
	return expense, nil
}

// UpdateExpense validates and replaces an existing expense.
func (s *BucketService) UpdateExpense(ctx context.Context, expenseID string, in ExpenseInput) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	bucket, err := s.store.GetBucket(ctx, expense.BucketID)
	if err != nil {
		return nil, err
	}
	split, err := validateTransaction(in.Amount, in.PaidBy, in.Split, bucket)
	if err != nil {
		return nil, err
	}

	expense.Title = strings.TrimSpace(in.Title)
	expense.Amount = in.Amount
	expense.PaidBy = in.PaidBy
	expense.Split = split
	expense.Notes = strings.TrimSpace(in.Notes)

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *BucketService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.store.DeleteExpense(ctx, expenseID)
}

// ListExpenses retrieves a bucket's expenses in creation order.
func (s *BucketService) ListExpenses(ctx context.Context, bucketID string) ([]models.Expense, error) {
	if _, err := s.store.GetBucket(ctx, bucketID); err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, bucketID)
}

// RecordCredit validates and persists a new credit in a bucket.
func (s *BucketService) RecordCredit(ctx context.Context, bucketID string, in CreditInput) (*models.Credit, error) {
	bucket, err := s.store.GetBucket(ctx, bucketID)
	if err != nil {
		return nil, err
	}
	split, err := validateTransaction(in.Amount, in.ReceivedBy, in.Split, bucket)
	if err != nil {
		return nil, err
	}

	credit := &models.Credit{
		BucketID:   bucketID,
		Title:      strings.TrimSpace(in.Title),
		Amount:     in.Amount,
		ReceivedBy: in.ReceivedBy,
		Split:      split,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if err := s.store.CreateCredit(ctx, credit); err != nil {
		return nil, err
	}

	slog.Info("Credit recorded",
		"bucket_id", bucketID,
		"credit_id", credit.ID,
		"amount", credit.Amount,
		"split_type", credit.Split.Type,
	)
	return credit, nil
}

// UpdateCredit validates and replaces an existing credit.
func (s *BucketService) UpdateCredit(ctx context.Context, creditID string, in CreditInput) (*models.Credit, error) {
	credit, err := s.store.GetCredit(ctx, creditID)
	if err != nil {
		return nil, err
	}
	bucket, err := s.store.GetBucket(ctx, credit.BucketID)
	if err != nil {
		return nil, err
	}
	split, err := validateTransaction(in.Amount, in.ReceivedBy, in.Split, bucket)
	if err != nil {
		return nil, err
	}

	credit.Title = strings.TrimSpace(in.Title)
	credit.Amount = in.Amount
	credit.ReceivedBy = in.ReceivedBy
	credit.Split = split
	credit.Notes = strings.TrimSpace(in.Notes)

	if err := s.store.UpdateCredit(ctx, credit); err != nil {
		return nil, err
	}
	return credit, nil
}

// DeleteCredit removes a credit.
func (s *BucketService) DeleteCredit(ctx context.Context, creditID string) error {
	return s.store.DeleteCredit(ctx, creditID)
}

// ListCredits retrieves a bucket's credits in creation order.
func (s *BucketService) ListCredits(ctx context.Context, bucketID string) ([]models.Credit, error) {
	if _, err := s.store.GetBucket(ctx, bucketID); err != nil {
		return nil, err
	}
	return s.store.ListCredits(ctx, bucketID)
}
