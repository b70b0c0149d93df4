package models

// SplitType identifies how a transaction's amount is divided among the
// bucket's participants.
type SplitType string

const (
	// SplitEven divides the amount equally among all active participants.
	SplitEven SplitType = "even"

	// SplitPercentage divides the amount according to per-participant
	// percentages in [0,100]. Participants absent from the mapping get
	// nothing.
	SplitPercentage SplitType = "percentage"
)

// SplitConfig is the split policy attached to a transaction.
type SplitConfig struct {
	// Type selects the split policy.
	Type SplitType `json:"type"`

	// Percentages maps participant UID to a percentage in [0,100].
	// Only meaningful for SplitPercentage. Callers are expected to make
	// the percentages sum to 100 before recording the transaction; the
	// calculator processes whatever it is given without renormalizing.
	Percentages map[string]float64 `json:"percentages,omitempty"`
}

// Expense represents money one participant paid that should be repaid
// by the group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// BucketID is the bucket this expense belongs to.
	BucketID string `json:"bucketId"`

	// Title is a short human-readable description (e.g., "Groceries").
	Title string `json:"title"`

	// Amount is the expense amount, always positive.
	Amount float64 `json:"amount"`

	// PaidBy is the UID of the participant who fronted the money.
	PaidBy string `json:"paidBy"`

	// Split governs how the amount is divided among participants.
	Split SplitConfig `json:"split"`

	// Notes is free-form text, irrelevant to any computation.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64 `json:"updatedAt"`
}

// Credit represents money one participant received that should be
// redistributed to the group. It is the mirror image of an Expense.
type Credit struct {
	// ID is the unique identifier for the credit (UUID format).
	ID string `json:"id"`

	// BucketID is the bucket this credit belongs to.
	BucketID string `json:"bucketId"`

	// Title is a short human-readable description (e.g., "Deposit refund").
	Title string `json:"title"`

	// Amount is the credit amount, always positive.
	Amount float64 `json:"amount"`

	// ReceivedBy is the UID of the participant who received the money.
	ReceivedBy string `json:"receivedBy"`

	// Split governs how the amount is divided among participants.
	Split SplitConfig `json:"split"`

	// Notes is free-form text, irrelevant to any computation.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the Unix timestamp when the credit was recorded.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64 `json:"updatedAt"`
}
