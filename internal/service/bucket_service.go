// Package service implements the application operations on buckets:
// CRUD for buckets, participants, expenses and credits, plus the
// summary computation. It performs the input validation the calculator
// deliberately leaves to its callers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bucketsplit/internal/calculator"
	"bucketsplit/internal/models"
	"bucketsplit/internal/storage"
)

// ErrInvalidInput marks validation failures. Callers can map it to a
// 400 response with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// percentTolerance is how far a percentage split's total may stray from
// 100 before it is rejected at the boundary.
const percentTolerance = 0.01

var summariesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "bucketsplit_summaries_computed_total",
	Help: "Total number of bucket summaries computed",
})

// BucketService wires storage and the calculator together.
type BucketService struct {
	store storage.Store
}

// NewBucketService creates a BucketService with the given storage backend.
func NewBucketService(store storage.Store) *BucketService {
	return &BucketService{store: store}
}

// CreateBucket creates a new empty bucket. Currency defaults to EUR.
func (s *BucketService) CreateBucket(ctx context.Context, name, currency string) (*models.Bucket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("bucket name must not be empty: %w", ErrInvalidInput)
	}
	if currency == "" {
		currency = "EUR"
	}

	bucket := &models.Bucket{Name: name, Currency: currency}
	if err := s.store.CreateBucket(ctx, bucket); err != nil {
		return nil, err
	}

	slog.Info("Bucket created", "bucket_id", bucket.ID, "name", bucket.Name)
	return bucket, nil
}

// GetBucket retrieves a bucket with its participants.
func (s *BucketService) GetBucket(ctx context.Context, bucketID string) (*models.Bucket, error) {
	return s.store.GetBucket(ctx, bucketID)
}

// ListBuckets retrieves all buckets, newest first.
func (s *BucketService) ListBuckets(ctx context.Context) ([]*models.Bucket, error) {
	return s.store.ListBuckets(ctx)
}

// UpdateBucket renames a bucket and/or changes its display currency.
// Empty fields keep their current value.
func (s *BucketService) UpdateBucket(ctx context.Context, bucketID, name, currency string) (*models.Bucket, error) {
	bucket, err := s.store.GetBucket(ctx, bucketID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		bucket.Name = name
	}
	if currency != "" {
		bucket.Currency = currency
	}

	if err := s.store.UpdateBucket(ctx, bucket); err != nil {
		return nil, err
	}
	return bucket, nil
}

// DeleteBucket removes a bucket and all its contents.
func (s *BucketService) DeleteBucket(ctx context.Context, bucketID string) error {
	if err := s.store.DeleteBucket(ctx, bucketID); err != nil {
		return err
	}
	slog.Info("Bucket deleted", "bucket_id", bucketID)
	return nil
}

// AddParticipant adds a participant to a bucket.
func (s *BucketService) AddParticipant(ctx context.Context, bucketID, email, displayName string) (*models.Participant, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("participant email %q is not valid: %w", email, ErrInvalidInput)
	}

	bucket, err := s.store.GetBucket(ctx, bucketID)
	if err != nil {
		return nil, err
	}

	// Reject duplicates within the bucket by email.
	for _, p := range bucket.Participants {
		if strings.EqualFold(p.Email, email) {
			return nil, fmt.Errorf("participant %s is already in the bucket: %w", email, ErrInvalidInput)
		}
	}

	participant := &models.Participant{Email: email, DisplayName: strings.TrimSpace(displayName)}
	if err := s.store.AddParticipant(ctx, bucketID, participant); err != nil {
		return nil, err
	}

	slog.Info("Participant added", "bucket_id", bucketID, "uid", participant.UID)
	return participant, nil
}

// RemoveParticipant removes a participant from a bucket.
// Transactions keep referencing the removed UID; balances for a bucket
// are always computed against the current participant set.
func (s *BucketService) RemoveParticipant(ctx context.Context, bucketID, uid string) error {
	return s.store.RemoveParticipant(ctx, bucketID, uid)
}

// Summary recomputes a bucket's balances, settlement plan and totals
// from the full transaction set. Nothing is cached or persisted: the
// transaction list is the single source of truth.
func (s *BucketService) Summary(ctx context.Context, bucketID string) (*models.Summary, error) {
	bucket, err := s.store.GetBucket(ctx, bucketID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, bucketID)
	if err != nil {
		return nil, err
	}
	credits, err := s.store.ListCredits(ctx, bucketID)
	if err != nil {
		return nil, err
	}

	summary, err := calculator.Summarize(bucket.ParticipantIDs(), expenses, credits)
	if err != nil {
		return nil, fmt.Errorf("summarize bucket %s: %w", bucketID, err)
	}

	summariesTotal.Inc()
	slog.Debug("Summary computed",
		"bucket_id", bucketID,
		"participants", len(bucket.Participants),
		"expenses", len(expenses),
		"credits", len(credits),
		"settlements", len(summary.Settlements),
	)
	return summary, nil
}

// validateTransaction enforces the upstream rules the calculator does
// not: positive amount, responsible participant in the bucket, and a
// well-formed split. Returns the cleaned-up split config.
func validateTransaction(amount float64, responsible string, split models.SplitConfig, bucket *models.Bucket) (models.SplitConfig, error) {
	if len(bucket.Participants) == 0 {
		return split, fmt.Errorf("bucket has no participants: %w", ErrInvalidInput)
	}
	if amount <= 0 {
		return split, fmt.Errorf("amount must be positive, got %v: %w", amount, ErrInvalidInput)
	}

	isMember := func(uid string) bool {
		for _, p := range bucket.Participants {
			if p.UID == uid {
				return true
			}
		}
		return false
	}
	if !isMember(responsible) {
		return split, fmt.Errorf("participant %q is not in the bucket: %w", responsible, ErrInvalidInput)
	}

	switch split.Type {
	case models.SplitEven:
		// No parameters; discard any stray percentages.
		split.Percentages = nil
	case models.SplitPercentage:
		if len(split.Percentages) == 0 {
			return split, fmt.Errorf("percentage split needs a percentage mapping: %w", ErrInvalidInput)
		}
		var total float64
		for uid, pct := range split.Percentages {
			if !isMember(uid) {
				return split, fmt.Errorf("percentage for %q, who is not in the bucket: %w", uid, ErrInvalidInput)
			}
			if pct < 0 || pct > 100 {
				return split, fmt.Errorf("percentage for %q must be in [0,100], got %v: %w", uid, pct, ErrInvalidInput)
			}
			total += pct
		}
		if math.Abs(total-100) > percentTolerance {
			return split, fmt.Errorf("percentages must sum to 100, got %v: %w", total, ErrInvalidInput)
		}
	default:
		return split, fmt.Errorf("split type %q is not supported: %w", split.Type, ErrInvalidInput)
	}

	return split, nil
}
