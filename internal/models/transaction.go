package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted shape of a debt entry. Currency may be empty
// in records written before the multi-currency update; loaders map that to
// the base currency.
type Transaction struct {
	ID       string          `json:"id"`
	PersonID string          `json:"personId"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	Currency string          `json:"currency,omitempty"`
	Date     time.Time       `json:"date"`
	Note     string          `json:"note,omitempty"`
}
