package accounting

import (
	"fmt"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the ledger sign convention to a transaction amount.
// This is used in both services and tests to keep the convention in one place.
//
// GIVE (counterpart owes owner) -> Positive (+)
// TAKE (owner owes counterpart) -> Negative (-)
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.Give:
		return txn.Amount, nil
	case domain.Take:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' encountered for transaction ID %s", txn.Type, txn.TransactionID)
	}
}

// BalanceForCurrency computes the signed balance of the transactions
// restricted to a single currency: sum(give) - sum(take). Transactions in
// any other currency never contribute.
func BalanceForCurrency(txns []domain.Transaction, currency domain.Currency) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		if txn.Currency != currency {
			continue
		}
		signed, err := SignedAmount(txn)
		if err != nil {
			// Unknown types are rejected at the mutation boundary; a stored
			// one is a data integrity bug, so skip rather than corrupt a sum.
			continue
		}
		balance = balance.Add(signed)
	}
	return balance
}

// SummarizeByCurrency groups the transactions by currency and computes
// {give, take, balance} per group. Currencies with zero transactions are
// omitted; group order follows the currency catalog.
func SummarizeByCurrency(txns []domain.Transaction) []domain.CurrencySummary {
	byCurrency := make(map[domain.Currency]*domain.CurrencySummary)
	for _, txn := range txns {
		group, ok := byCurrency[txn.Currency]
		if !ok {
			group = &domain.CurrencySummary{
				Currency: txn.Currency,
				Give:     decimal.Zero,
				Take:     decimal.Zero,
				Balance:  decimal.Zero,
			}
			byCurrency[txn.Currency] = group
		}
		switch txn.Type {
		case domain.Give:
			group.Give = group.Give.Add(txn.Amount)
			group.Balance = group.Balance.Add(txn.Amount)
		case domain.Take:
			group.Take = group.Take.Add(txn.Amount)
			group.Balance = group.Balance.Sub(txn.Amount)
		}
	}

	summaries := make([]domain.CurrencySummary, 0, len(byCurrency))
	for _, cfg := range domain.Currencies() {
		if group, ok := byCurrency[cfg.Code]; ok {
			summaries = append(summaries, *group)
		}
	}
	return summaries
}

// GlobalSummary computes the dashboard aggregate {toMe, onMe, balance} over
// only the transactions tagged with the given display currency.
func GlobalSummary(txns []domain.Transaction, currency domain.Currency) domain.DebtSummary {
	toMe := decimal.Zero
	onMe := decimal.Zero
	for _, txn := range txns {
		if txn.Currency != currency {
			continue
		}
		switch txn.Type {
		case domain.Give:
			toMe = toMe.Add(txn.Amount)
		case domain.Take:
			onMe = onMe.Add(txn.Amount)
		}
	}
	return domain.DebtSummary{
		Currency: currency,
		ToMe:     toMe,
		OnMe:     onMe,
		Balance:  toMe.Sub(onMe),
	}
}
