package services

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
)

// ReportingSvc computes read-only aggregates from the entity store. Every
// call recomputes from the store's contents at call time; nothing is cached.
type ReportingSvc interface {
	// Overview computes the global summary restricted to one display
	// currency, plus entity counts, for the dashboard and the advisor.
	Overview(ctx context.Context, currency domain.Currency) (*domain.OverviewReport, error)

	// PersonSummary groups one person's transactions by currency. A person
	// with no transactions yields an empty slice.
	PersonSummary(ctx context.Context, personID string) ([]domain.CurrencySummary, error)

	// PersonBalances pairs every person with their balance in one display
	// currency, classified creditor or debtor.
	PersonBalances(ctx context.Context, currency domain.Currency) ([]domain.PersonBalance, error)
}
