// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"bucketsplit/internal/models"
	"bucketsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateBucket persists a new bucket to the database.
func (s *SQLiteStore) CreateBucket(ctx context.Context, bucket *models.Bucket) error {
	if bucket.ID == "" {
		bucket.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if bucket.CreatedAt == 0 {
		bucket.CreatedAt = now
	}
	if bucket.UpdatedAt == 0 {
		bucket.UpdatedAt = bucket.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO buckets (id, name, currency, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		bucket.ID, bucket.Name, bucket.Currency, bucket.CreatedAt, bucket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bucket: %w", err)
	}

	return nil
}

// GetBucket retrieves a bucket by ID, including its participants.
func (s *SQLiteStore) GetBucket(ctx context.Context, bucketID string) (*models.Bucket, error) {
	bucket := &models.Bucket{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, currency, created_at, updated_at FROM buckets WHERE id = ?",
		bucketID,
	).Scan(&bucket.ID, &bucket.Name, &bucket.Currency, &bucket.CreatedAt, &bucket.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bucket %s: %w", bucketID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	participants, err := s.ListParticipants(ctx, bucketID)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		bucket.Participants = append(bucket.Participants, *p)
	}

	return bucket, nil
}

// ListBuckets retrieves all buckets, newest first. Participants are not
// loaded.
func (s *SQLiteStore) ListBuckets(ctx context.Context) ([]*models.Bucket, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, currency, created_at, updated_at FROM buckets ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	defer rows.Close()

	var buckets []*models.Bucket
	for rows.Next() {
		bucket := &models.Bucket{}
		if err := rows.Scan(&bucket.ID, &bucket.Name, &bucket.Currency, &bucket.CreatedAt, &bucket.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buckets: %w", err)
	}

	return buckets, nil
}

// UpdateBucket updates a bucket's name and currency.
func (s *SQLiteStore) UpdateBucket(ctx context.Context, bucket *models.Bucket) error {
	bucket.UpdatedAt = time.Now().Unix()

	result, err := s.db.ExecContext(ctx,
		"UPDATE buckets SET name = ?, currency = ?, updated_at = ? WHERE id = ?",
		bucket.Name, bucket.Currency, bucket.UpdatedAt, bucket.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bucket: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("bucket %s: %w", bucket.ID, storage.ErrNotFound)
	}

	return nil
}

// DeleteBucket removes a bucket. Participants, expenses and credits go
// with it via foreign key cascades.
func (s *SQLiteStore) DeleteBucket(ctx context.Context, bucketID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM buckets WHERE id = ?", bucketID)
	if err != nil {
		return fmt.Errorf("failed to delete bucket: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("bucket %s: %w", bucketID, storage.ErrNotFound)
	}

	return nil
}

// AddParticipant adds a participant to a bucket.
func (s *SQLiteStore) AddParticipant(ctx context.Context, bucketID string, participant *models.Participant) error {
	if participant.UID == "" {
		participant.UID = uuid.New().String()
	}
	if participant.AddedAt == 0 {
		participant.AddedAt = time.Now().Unix()
	}

	var displayName interface{}
	if participant.DisplayName != "" {
		displayName = participant.DisplayName
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO participants (bucket_id, uid, email, display_name, added_at) VALUES (?, ?, ?, ?, ?)",
		bucketID, participant.UID, participant.Email, displayName, participant.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	return nil
}

// RemoveParticipant removes a participant from a bucket.
func (s *SQLiteStore) RemoveParticipant(ctx context.Context, bucketID, uid string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM participants WHERE bucket_id = ? AND uid = ?",
		bucketID, uid,
	)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("participant %s in bucket %s: %w", uid, bucketID, storage.ErrNotFound)
	}

	return nil
}

// ListParticipants retrieves a bucket's participants in join order.
func (s *SQLiteStore) ListParticipants(ctx context.Context, bucketID string) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT uid, email, display_name, added_at FROM participants WHERE bucket_id = ? ORDER BY added_at, uid",
		bucketID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		participant := &models.Participant{}
		var displayName sql.NullString
		if err := rows.Scan(&participant.UID, &participant.Email, &displayName, &participant.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if displayName.Valid {
			participant.DisplayName = displayName.String
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}
