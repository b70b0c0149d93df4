package sqlite

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"bucketsplit/internal/models"
	"bucketsplit/internal/storage"
)

// setupTestStore creates a store backed by a temp database file.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "bucketsplit-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return store
}

func createTestBucket(t *testing.T, store *SQLiteStore, participants ...string) *models.Bucket {
	t.Helper()
	ctx := context.Background()

	bucket := &models.Bucket{Name: "Trip", Currency: "EUR"}
	if err := store.CreateBucket(ctx, bucket); err != nil {
		t.Fatalf("CreateBucket() failed: %v", err)
	}
	for i, email := range participants {
		p := &models.Participant{Email: email, AddedAt: int64(i + 1)}
		if err := store.AddParticipant(ctx, bucket.ID, p); err != nil {
			t.Fatalf("AddParticipant(%s) failed: %v", email, err)
		}
	}
	return bucket
}

func TestBucketRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	bucket := &models.Bucket{Name: "Ski Trip", Currency: "CHF"}
	if err := store.CreateBucket(ctx, bucket); err != nil {
		t.Fatalf("CreateBucket() failed: %v", err)
	}
	if bucket.ID == "" {
		t.Fatal("CreateBucket() did not assign an ID")
	}
	if bucket.CreatedAt == 0 {
		t.Error("CreateBucket() did not set CreatedAt")
	}

	got, err := store.GetBucket(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("GetBucket() failed: %v", err)
	}
	if got.Name != "Ski Trip" || got.Currency != "CHF" {
		t.Errorf("GetBucket() = %+v, want name=Ski Trip currency=CHF", got)
	}

	got.Name = "Ski Trip 2026"
	if err := store.UpdateBucket(ctx, got); err != nil {
		t.Fatalf("UpdateBucket() failed: %v", err)
	}
	updated, err := store.GetBucket(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("GetBucket() after update failed: %v", err)
	}
	if updated.Name != "Ski Trip 2026" {
		t.Errorf("updated name = %q, want %q", updated.Name, "Ski Trip 2026")
	}

	buckets, err := store.ListBuckets(ctx)
	if err != nil {
		t.Fatalf("ListBuckets() failed: %v", err)
	}
	if len(buckets) != 1 {
		t.Errorf("ListBuckets() returned %d buckets, want 1", len(buckets))
	}

	if err := store.DeleteBucket(ctx, bucket.ID); err != nil {
		t.Fatalf("DeleteBucket() failed: %v", err)
	}
	if _, err := store.GetBucket(ctx, bucket.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetBucket() after delete error = %v, want ErrNotFound", err)
	}
}

func TestBucketNotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.GetBucket(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetBucket() error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteBucket(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteBucket() error = %v, want ErrNotFound", err)
	}
	if err := store.UpdateBucket(ctx, &models.Bucket{ID: "missing"}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateBucket() error = %v, want ErrNotFound", err)
	}
}

func TestParticipants(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	bucket := createTestBucket(t, store, "alice@example.com", "bob@example.com")

	participants, err := store.ListParticipants(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("ListParticipants() failed: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("got %d participants, want 2", len(participants))
	}
	// Join order is preserved.
	if participants[0].Email != "alice@example.com" {
		t.Errorf("first participant = %q, want alice@example.com", participants[0].Email)
	}

	loaded, err := store.GetBucket(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("GetBucket() failed: %v", err)
	}
	if len(loaded.Participants) != 2 {
		t.Errorf("GetBucket() loaded %d participants, want 2", len(loaded.Participants))
	}

	if err := store.RemoveParticipant(ctx, bucket.ID, participants[1].UID); err != nil {
		t.Fatalf("RemoveParticipant() failed: %v", err)
	}
	remaining, err := store.ListParticipants(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("ListParticipants() failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("got %d participants after removal, want 1", len(remaining))
	}

	if err := store.RemoveParticipant(ctx, bucket.ID, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("RemoveParticipant() error = %v, want ErrNotFound", err)
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	bucket := createTestBucket(t, store, "alice@example.com", "bob@example.com")
	participants, err := store.ListParticipants(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("ListParticipants() failed: %v", err)
	}
	alice, bob := participants[0].UID, participants[1].UID

	expense := &models.Expense{
		BucketID: bucket.ID,
		Title:    "Dinner",
		Amount:   100.0,
		PaidBy:   alice,
		Split: models.SplitConfig{
			Type:        models.SplitPercentage,
			Percentages: map[string]float64{alice: 30, bob: 70},
		},
		Notes: "nice place",
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense() failed: %v", err)
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense() failed: %v", err)
	}
	if got.Title != "Dinner" || got.Amount != 100.0 || got.PaidBy != alice || got.Notes != "nice place" {
		t.Errorf("GetExpense() = %+v", got)
	}
	if got.Split.Type != models.SplitPercentage {
		t.Errorf("split type = %q, want percentage", got.Split.Type)
	}
	if !reflect.DeepEqual(got.Split.Percentages, expense.Split.Percentages) {
		t.Errorf("percentages = %v, want %v", got.Split.Percentages, expense.Split.Percentages)
	}

	// Switching to an even split drops the percentage rows.
	got.Split = models.SplitConfig{Type: models.SplitEven}
	got.Amount = 90.0
	if err := store.UpdateExpense(ctx, got); err != nil {
		t.Fatalf("UpdateExpense() failed: %v", err)
	}
	updated, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense() after update failed: %v", err)
	}
	if updated.Split.Type != models.SplitEven || updated.Split.Percentages != nil {
		t.Errorf("updated split = %+v, want plain even", updated.Split)
	}
	if updated.Amount != 90.0 {
		t.Errorf("updated amount = %v, want 90.0", updated.Amount)
	}

	if err := store.DeleteExpense(ctx, expense.ID); err != nil {
		t.Fatalf("DeleteExpense() failed: %v", err)
	}
	if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetExpense() after delete error = %v, want ErrNotFound", err)
	}
}

func TestListExpensesOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	bucket := createTestBucket(t, store, "alice@example.com")
	participants, _ := store.ListParticipants(ctx, bucket.ID)
	alice := participants[0].UID

	for i, title := range []string{"first", "second", "third"} {
		expense := &models.Expense{
			BucketID:  bucket.ID,
			Title:     title,
			Amount:    10.0,
			PaidBy:    alice,
			Split:     models.SplitConfig{Type: models.SplitEven},
			CreatedAt: int64(i + 1),
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense(%s) failed: %v", title, err)
		}
	}

	expenses, err := store.ListExpenses(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("ListExpenses() failed: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("got %d expenses, want 3", len(expenses))
	}
	for i, title := range []string{"first", "second", "third"} {
		if expenses[i].Title != title {
			t.Errorf("expenses[%d] = %q, want %q", i, expenses[i].Title, title)
		}
	}
}

func TestCreditRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	bucket := createTestBucket(t, store, "alice@example.com", "bob@example.com")
	participants, _ := store.ListParticipants(ctx, bucket.ID)
	alice := participants[0].UID

	credit := &models.Credit{
		BucketID:   bucket.ID,
		Title:      "Deposit refund",
		Amount:     50.0,
		ReceivedBy: alice,
		Split:      models.SplitConfig{Type: models.SplitEven},
	}
	if err := store.CreateCredit(ctx, credit); err != nil {
		t.Fatalf("CreateCredit() failed: %v", err)
	}

	got, err := store.GetCredit(ctx, credit.ID)
	if err != nil {
		t.Fatalf("GetCredit() failed: %v", err)
	}
	if got.Title != "Deposit refund" || got.ReceivedBy != alice || got.Split.Type != models.SplitEven {
		t.Errorf("GetCredit() = %+v", got)
	}

	credits, err := store.ListCredits(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("ListCredits() failed: %v", err)
	}
	if len(credits) != 1 {
		t.Errorf("got %d credits, want 1", len(credits))
	}

	if err := store.DeleteCredit(ctx, credit.ID); err != nil {
		t.Fatalf("DeleteCredit() failed: %v", err)
	}
	if _, err := store.GetCredit(ctx, credit.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetCredit() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteBucketCascades(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	bucket := createTestBucket(t, store, "alice@example.com")
	participants, _ := store.ListParticipants(ctx, bucket.ID)
	alice := participants[0].UID

	expense := &models.Expense{
		BucketID: bucket.ID,
		Title:    "Dinner",
		Amount:   10.0,
		PaidBy:   alice,
		Split:    models.SplitConfig{Type: models.SplitEven},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense() failed: %v", err)
	}

	if err := store.DeleteBucket(ctx, bucket.ID); err != nil {
		t.Fatalf("DeleteBucket() failed: %v", err)
	}

	if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expense survived bucket delete, error = %v", err)
	}
	remaining, err := store.ListParticipants(ctx, bucket.ID)
	if err != nil {
		t.Fatalf("ListParticipants() failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d participants survived bucket delete", len(remaining))
	}
}
