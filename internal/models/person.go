package models

import "time"

// Person is the persisted shape of a tracked counterpart. JSON tags match
// the records produced by earlier versions of the application, so stored
// state remains loadable.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
