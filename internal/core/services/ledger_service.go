package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
)

// ledgerService is the mutation API: the sole writer to the entity store.
// Referential integrity lives here; the repository only persists.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	settingsSvc portssvc.SettingsReaderSvc
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, settingsSvc portssvc.SettingsReaderSvc) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		settingsSvc: settingsSvc,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: person name must not be empty", apperrors.ErrValidation)
	}

	person := domain.Person{
		PersonID:  uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: time.Now(),
	}

	if err := s.ledgerRepo.SavePerson(ctx, person); err != nil {
		s.LogError(ctx, err, "Failed to save person", slog.String("person_name", name))
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	s.LogInfo(ctx, "Person created", slog.String("person_id", person.PersonID))
	return &person, nil
}

// DeletePerson removes the person and, through the repository, every
// transaction referencing them. Deleting an unknown id is a no-op.
func (s *ledgerService) DeletePerson(ctx context.Context, personID string) error {
	if err := s.ledgerRepo.DeletePerson(ctx, personID); err != nil {
		s.LogError(ctx, err, "Failed to delete person", slog.String("person_id", personID))
		return fmt.Errorf("failed to delete person: %w", err)
	}
	s.LogInfo(ctx, "Person deleted", slog.String("person_id", personID))
	return nil
}

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	currency, err := s.resolveCurrency(ctx, req.Currency)
	if err != nil {
		return nil, err
	}

	// The referenced person must exist at creation time. After that, the
	// cascading delete keeps references from dangling.
	person, err := s.ledgerRepo.FindPersonByID(ctx, req.PersonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: person %s does not exist", apperrors.ErrValidation, req.PersonID)
		}
		return nil, fmt.Errorf("failed to look up person: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		PersonID:      person.PersonID,
		Amount:        req.Amount,
		Type:          txnType,
		Currency:      currency,
		Date:          time.Now(),
		Note:          req.Note,
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("person_id", person.PersonID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("person_id", txn.PersonID),
		slog.String("type", string(txn.Type)),
		slog.String("currency", string(txn.Currency)))
	return &txn, nil
}

// DeleteTransaction removes the transaction. Deleting an unknown id is a no-op.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.ledgerRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.ledgerRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (s *ledgerService) FindPersonByName(ctx context.Context, name string) (*domain.Person, error) {
	person, err := s.ledgerRepo.FindPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (s *ledgerService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	people, err := s.ledgerRepo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	if people == nil {
		return []domain.Person{}, nil
	}
	return people, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *ledgerService) ListTransactionsByPerson(ctx context.Context, personID string) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactionsByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for person %s: %w", personID, err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// resolveCurrency validates an explicit currency code or falls back to the
// process-wide default when none was given.
func (s *ledgerService) resolveCurrency(ctx context.Context, raw string) (domain.Currency, error) {
	if raw == "" {
		settings, err := s.settingsSvc.GetSettings(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to resolve default currency: %w", err)
		}
		return settings.DefaultCurrency, nil
	}
	currency, err := domain.ParseCurrency(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return currency, nil
}
