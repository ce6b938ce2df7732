package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a debt entry relative to the
// ledger owner.
type TransactionType string

const (
	// Give is an amount the counterpart owes to the ledger owner.
	Give TransactionType = "give"
	// Take is an amount the ledger owner owes to the counterpart.
	Take TransactionType = "take"
)

// IsValid reports whether the type is one of the two known directions.
func (t TransactionType) IsValid() bool {
	return t == Give || t == Take
}

// ParseTransactionType validates a raw transaction type tag.
func ParseTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("unsupported transaction type %q", raw)
	}
	return t, nil
}

// Transaction is a single debt entry against one Person. Amount is always
// positive; direction is carried by Type, never by the numeric sign.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	PersonID      string          `json:"personID"`      // FK -> Person.PersonID
	Amount        decimal.Decimal `json:"amount"`        // Strictly positive
	Type          TransactionType `json:"type"`          // give or take
	Currency      Currency        `json:"currency"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"` // Optional
}
