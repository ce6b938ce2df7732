package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/models"
	"github.com/aldayn/dayn_backend/internal/utils/mapping"
)

func TestToDomainTransaction_LegacyRecordGetsBaseCurrency(t *testing.T) {
	record := models.Transaction{
		ID:       "t-1",
		PersonID: "p-1",
		Amount:   decimal.RequireFromString("75"),
		Type:     "give",
		Currency: "", // written before the currency field existed
		Date:     time.Now(),
	}

	txn := mapping.ToDomainTransaction(record)

	assert.Equal(t, domain.BaseCurrency, txn.Currency)
	assert.Equal(t, domain.Give, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("75")))
}

func TestToDomainTransaction_TaggedRecordKeepsCurrency(t *testing.T) {
	record := models.Transaction{
		ID:       "t-2",
		PersonID: "p-1",
		Amount:   decimal.RequireFromString("10"),
		Type:     "take",
		Currency: "USD",
	}

	txn := mapping.ToDomainTransaction(record)

	assert.Equal(t, domain.CurrencyUSD, txn.Currency)
}

func TestTransactionRoundTrip(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "t-3",
		PersonID:      "p-2",
		Amount:        decimal.RequireFromString("12.50"),
		Type:          domain.Take,
		Currency:      domain.CurrencySYP,
		Date:          time.Now(),
		Note:          "groceries",
	}

	back := mapping.ToDomainTransaction(mapping.ToModelTransaction(txn))
	assert.Equal(t, txn.TransactionID, back.TransactionID)
	assert.Equal(t, txn.Currency, back.Currency)
	assert.Equal(t, txn.Note, back.Note)
	assert.True(t, txn.Amount.Equal(back.Amount))
}
