package domain

import "github.com/shopspring/decimal"

// BalanceStatus classifies a balance from the ledger owner's point of view.
type BalanceStatus string

const (
	// StatusCreditor means the counterpart owes the owner (balance >= 0).
	// A zero balance deliberately ties to creditor, not to a neutral state.
	StatusCreditor BalanceStatus = "creditor"
	// StatusDebtor means the owner owes the counterpart (balance < 0).
	StatusDebtor BalanceStatus = "debtor"
)

// StatusForBalance applies the non-negative-is-creditor tie-break.
func StatusForBalance(balance decimal.Decimal) BalanceStatus {
	if balance.IsNegative() {
		return StatusDebtor
	}
	return StatusCreditor
}

// CurrencySummary aggregates one person's transactions within one currency.
// Balance is Give minus Take.
type CurrencySummary struct {
	Currency Currency        `json:"currency"`
	Give     decimal.Decimal `json:"give"`
	Take     decimal.Decimal `json:"take"`
	Balance  decimal.Decimal `json:"balance"`
}

// DebtSummary is the global dashboard aggregate over a single currency.
// Transactions in other currencies are excluded entirely, never converted.
type DebtSummary struct {
	Currency Currency        `json:"currency"`
	ToMe     decimal.Decimal `json:"toMe"`
	OnMe     decimal.Decimal `json:"onMe"`
	Balance  decimal.Decimal `json:"balance"`
}

// OverviewReport extends the global summary with entity counts for the
// dashboard and the advisory prompt.
type OverviewReport struct {
	Summary          DebtSummary   `json:"summary"`
	PersonCount      int           `json:"personCount"`
	TransactionCount int           `json:"transactionCount"`
	Status           BalanceStatus `json:"status"`
}

// PersonBalance pairs a person with their balance in one display currency,
// used by list views for creditor/debtor filtering.
type PersonBalance struct {
	Person
	Currency Currency        `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Status   BalanceStatus   `json:"status"`
}
