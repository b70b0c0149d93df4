package models

// Settlement is a single suggested payment: From should pay To the
// given amount. Settlements are derived on every summary request and
// never persisted.
type Settlement struct {
	// From is the UID of the participant who owes.
	From string `json:"from"`

	// To is the UID of the participant who is owed.
	To string `json:"to"`

	// Amount is the payment amount, rounded to 2 decimals for display.
	Amount float64 `json:"amount"`
}

// Summary is the derived state of a bucket: per-participant net
// balances, the settlement plan that would zero them out, and the two
// aggregate totals.
type Summary struct {
	// Balances maps participant UID to net balance. Positive means the
	// group owes that participant; negative means that participant owes
	// the group. Every current participant has an entry, even with no
	// transactions.
	Balances map[string]float64 `json:"balances"`

	// Settlements is the ordered minimal-transaction plan that brings
	// every balance to (approximately) zero.
	Settlements []Settlement `json:"settlements"`

	// TotalExpenses is the sum of all expense amounts in the bucket.
	TotalExpenses float64 `json:"totalExpenses"`

	// TotalCredits is the sum of all credit amounts in the bucket.
	TotalCredits float64 `json:"totalCredits"`
}
