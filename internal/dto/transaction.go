package dto

import (
	"time"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a debt entry.
// Currency may be omitted; the service substitutes the process-wide default.
type CreateTransactionRequest struct {
	PersonID string          `json:"personID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Type     string          `json:"type" binding:"required,oneof=give take"`
	Currency string          `json:"currency" binding:"omitempty,currencycode"`
	Note     string          `json:"note"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	PersonID      string          `json:"personID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Currency      string          `json:"currency"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		PersonID:      t.PersonID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Currency:      string(t.Currency),
		Date:          t.Date,
		Note:          t.Note,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
