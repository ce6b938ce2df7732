package domain

import "time"

// Person is a tracked counterpart in the ledger. Identity is PersonID,
// generated at creation and immutable afterwards.
type Person struct {
	PersonID  string    `json:"personID"` // Primary Key (UUID)
	Name      string    `json:"name"`     // Non-empty
	Phone     string    `json:"phone"`    // Optional
	CreatedAt time.Time `json:"createdAt"`
}
