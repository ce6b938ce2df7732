package dto

import (
	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySummaryResponse is one per-currency group of a person's summary.
type CurrencySummaryResponse struct {
	Currency string          `json:"currency"`
	Give     decimal.Decimal `json:"give"`
	Take     decimal.Decimal `json:"take"`
	Balance  decimal.Decimal `json:"balance"`
}

// OverviewResponse is the dashboard aggregate for one display currency.
type OverviewResponse struct {
	Currency         string          `json:"currency"`
	ToMe             decimal.Decimal `json:"toMe"`
	OnMe             decimal.Decimal `json:"onMe"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status"`
	PersonCount      int             `json:"personCount"`
	TransactionCount int             `json:"transactionCount"`
}

// ToCurrencySummaryResponse converts a domain.CurrencySummary to its DTO.
func ToCurrencySummaryResponse(s domain.CurrencySummary) CurrencySummaryResponse {
	return CurrencySummaryResponse{
		Currency: string(s.Currency),
		Give:     s.Give,
		Take:     s.Take,
		Balance:  s.Balance,
	}
}

// ToListCurrencySummaryResponse converts a slice of domain.CurrencySummary.
func ToListCurrencySummaryResponse(summaries []domain.CurrencySummary) []CurrencySummaryResponse {
	res := make([]CurrencySummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = ToCurrencySummaryResponse(s)
	}
	return res
}

// ToOverviewResponse converts a domain.OverviewReport to its DTO.
func ToOverviewResponse(r *domain.OverviewReport) OverviewResponse {
	return OverviewResponse{
		Currency:         string(r.Summary.Currency),
		ToMe:             r.Summary.ToMe,
		OnMe:             r.Summary.OnMe,
		Balance:          r.Summary.Balance,
		Status:           string(r.Status),
		PersonCount:      r.PersonCount,
		TransactionCount: r.TransactionCount,
	}
}
