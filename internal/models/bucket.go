package models

// Bucket represents a named group of participants sharing expenses.
type Bucket struct {
	// ID is the unique identifier for the bucket (UUID format).
	ID string `json:"id"`

	// Name is the display name of the bucket (e.g., "Ski Trip 2026").
	Name string `json:"name"`

	// Currency is the display currency code for the bucket (e.g., "EUR").
	// Purely cosmetic: all amounts inside one bucket are assumed to be
	// in this currency and no conversion ever happens.
	Currency string `json:"currency"`

	// Participants is the bucket's current participant set, if loaded.
	Participants []Participant `json:"participants,omitempty"`

	// CreatedAt is the Unix timestamp when the bucket was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64 `json:"updatedAt"`
}

// ParticipantIDs returns the UIDs of the bucket's loaded participants,
// in storage order. The result is the active participant set handed to
// the calculator.
func (b *Bucket) ParticipantIDs() []string {
	ids := make([]string, len(b.Participants))
	for i, p := range b.Participants {
		ids[i] = p.UID
	}
	return ids
}

// Participant is one member of a bucket.
// The UID is an opaque key, unique within the bucket; everything else
// is display metadata.
type Participant struct {
	// UID is the participant's identifier within the bucket (UUID format).
	UID string `json:"uid"`

	// Email is the participant's email address.
	Email string `json:"email"`

	// DisplayName is an optional human-friendly name.
	DisplayName string `json:"displayName,omitempty"`

	// AddedAt is the Unix timestamp when the participant joined the bucket.
	AddedAt int64 `json:"addedAt"`
}
