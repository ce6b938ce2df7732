package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/utils/accounting"
)

// reportingService derives read-only aggregates from the entity store.
// It never mutates and never caches: every call reads the store's contents
// at call time.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.ReportingSvc {
	return &reportingService{ledgerRepo: ledgerRepo}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// Overview computes the dashboard aggregate restricted to one display
// currency. Transactions in other currencies are excluded entirely.
func (s *reportingService) Overview(ctx context.Context, currency domain.Currency) (*domain.OverviewReport, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("unsupported currency code %q", currency)
	}

	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions for overview: %w", err)
	}
	people, err := s.ledgerRepo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve persons for overview: %w", err)
	}

	summary := accounting.GlobalSummary(txns, currency)
	report := &domain.OverviewReport{
		Summary:          summary,
		PersonCount:      len(people),
		TransactionCount: len(txns),
		Status:           domain.StatusForBalance(summary.Balance),
	}

	s.LogDebug(ctx, "Overview computed",
		slog.String("currency", string(currency)),
		slog.Int("person_count", report.PersonCount),
		slog.Int("transaction_count", report.TransactionCount))
	return report, nil
}

// PersonSummary groups one person's transactions by currency. The person
// must exist; a person with no transactions yields an empty slice.
func (s *reportingService) PersonSummary(ctx context.Context, personID string) ([]domain.CurrencySummary, error) {
	if _, err := s.ledgerRepo.FindPersonByID(ctx, personID); err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.ListTransactionsByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions for person %s: %w", personID, err)
	}

	return accounting.SummarizeByCurrency(txns), nil
}

// PersonBalances lists every person with their balance in the display
// currency. A person with no transactions in that currency has balance 0
// and classifies as creditor.
func (s *reportingService) PersonBalances(ctx context.Context, currency domain.Currency) ([]domain.PersonBalance, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("unsupported currency code %q", currency)
	}

	people, err := s.ledgerRepo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve persons: %w", err)
	}

	balances := make([]domain.PersonBalance, 0, len(people))
	for _, person := range people {
		txns, err := s.ledgerRepo.ListTransactionsByPerson(ctx, person.PersonID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve transactions for person %s: %w", person.PersonID, err)
		}
		balance := accounting.BalanceForCurrency(txns, currency)
		balances = append(balances, domain.PersonBalance{
			Person:   person,
			Currency: currency,
			Balance:  balance,
			Status:   domain.StatusForBalance(balance),
		})
	}
	return balances, nil
}
