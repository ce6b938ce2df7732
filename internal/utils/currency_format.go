package utils

import (
	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmountWithSymbol renders an amount with its currency symbol for
// human-facing text such as bot confirmations.
// Example: 50 with USD returns "50 $".
func FormatAmountWithSymbol(amount decimal.Decimal, currency domain.Currency) string {
	cfg, ok := currency.Config()
	if !ok {
		return amount.String() + " " + string(currency)
	}
	return amount.String() + " " + cfg.Symbol
}
