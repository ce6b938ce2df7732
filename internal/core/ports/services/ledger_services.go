package services

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/dto"
)

// LedgerReaderSvc defines read operations over the entity store.
type LedgerReaderSvc interface {
	// GetPersonByID retrieves a person by id.
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// FindPersonByName retrieves a person by exact, case-insensitive name.
	FindPersonByName(ctx context.Context, name string) (*domain.Person, error)

	// ListPersons retrieves every person in insertion order.
	ListPersons(ctx context.Context) ([]domain.Person, error)

	// ListTransactions retrieves every transaction in insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByPerson retrieves one person's transactions.
	ListTransactionsByPerson(ctx context.Context, personID string) ([]domain.Transaction, error)
}

// LedgerWriterSvc is the mutation API: the sole writer to the entity store.
type LedgerWriterSvc interface {
	// CreatePerson validates and appends a new person.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)

	// DeletePerson removes a person and cascades to their transactions.
	// Idempotent: deleting a missing id is not an error.
	DeletePerson(ctx context.Context, personID string) error

	// CreateTransaction validates and appends a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction. Idempotent.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
