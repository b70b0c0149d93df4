// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"bucketsplit/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
// Implementations wrap it with the entity kind and ID.
var ErrNotFound = errors.New("not found")

// Store defines the interface for bucket storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// The store owns the entities; the calculator only ever sees read-only
// snapshots loaded through this interface.
type Store interface {
	// CreateBucket persists a new bucket. ID and timestamps are
	// populated by the store if unset.
	CreateBucket(ctx context.Context, bucket *models.Bucket) error

	// GetBucket retrieves a bucket by ID, with its participants loaded.
	GetBucket(ctx context.Context, bucketID string) (*models.Bucket, error)

	// ListBuckets retrieves all buckets, newest first, without
	// participants loaded.
	ListBuckets(ctx context.Context) ([]*models.Bucket, error)

	// UpdateBucket updates a bucket's name and currency.
	UpdateBucket(ctx context.Context, bucket *models.Bucket) error

	// DeleteBucket removes a bucket and everything in it.
	DeleteBucket(ctx context.Context, bucketID string) error

	// AddParticipant adds a participant to a bucket. UID and AddedAt
	// are populated by the store if unset.
	AddParticipant(ctx context.Context, bucketID string, participant *models.Participant) error

	// RemoveParticipant removes a participant from a bucket.
	RemoveParticipant(ctx context.Context, bucketID, uid string) error

	// ListParticipants retrieves a bucket's participants in the order
	// they were added.
	ListParticipants(ctx context.Context, bucketID string) ([]*models.Participant, error)

	// CreateExpense persists a new expense.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpenses retrieves a bucket's expenses in creation order.
	ListExpenses(ctx context.Context, bucketID string) ([]models.Expense, error)

	// CreateCredit persists a new credit.
	CreateCredit(ctx context.Context, credit *models.Credit) error

	// GetCredit retrieves a credit by ID.
	GetCredit(ctx context.Context, creditID string) (*models.Credit, error)

	// UpdateCredit replaces an existing credit.
	UpdateCredit(ctx context.Context, credit *models.Credit) error

	// DeleteCredit removes a credit by ID.
	DeleteCredit(ctx context.Context, creditID string) error

	// ListCredits retrieves a bucket's credits in creation order.
	ListCredits(ctx context.Context, bucketID string) ([]models.Credit, error)

	// Close releases any resources held by the store.
	Close() error
}
