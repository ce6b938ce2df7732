package mapping

import (
	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to its persisted shape.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:       t.TransactionID,
		PersonID: t.PersonID,
		Amount:   t.Amount,
		Type:     string(t.Type),
		Currency: string(t.Currency),
		Date:     t.Date,
		Note:     t.Note,
	}
}

// ToDomainTransaction converts a persisted Transaction record to the domain
// shape. Records without a currency tag predate the multi-currency update
// and load as the base currency.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	currency := domain.Currency(m.Currency)
	if m.Currency == "" {
		currency = domain.BaseCurrency
	}
	return domain.Transaction{
		TransactionID: m.ID,
		PersonID:      m.PersonID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Currency:      currency,
		Date:          m.Date,
		Note:          m.Note,
	}
}

// ToModelTransactions converts a slice of domain Transactions.
func ToModelTransactions(txns []domain.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txns))
	for i, t := range txns {
		out[i] = ToModelTransaction(t)
	}
	return out
}

// ToDomainTransactions converts a slice of persisted Transaction records.
func ToDomainTransactions(records []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(records))
	for i, m := range records {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
