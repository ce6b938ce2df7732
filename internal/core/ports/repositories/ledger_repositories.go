package repositories

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves a person by their generated id.
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// FindPersonByName retrieves a person by exact, case-insensitive name.
	FindPersonByName(ctx context.Context, name string) (*domain.Person, error)

	// ListPersons retrieves every person in insertion order.
	ListPersons(ctx context.Context) ([]domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson appends a new person and persists the collection.
	SavePerson(ctx context.Context, person domain.Person) error

	// DeletePerson removes the person and cascades to every transaction
	// referencing them, as a single persisted step. Missing ids are a no-op.
	DeletePerson(ctx context.Context, personID string) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its generated id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction in insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByPerson retrieves one person's transactions in
	// insertion order.
	ListTransactionsByPerson(ctx context.Context, personID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction appends a new transaction and persists the collection.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Missing ids are a no-op.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
// This is a facade for clients that need access to all operations.
type LedgerRepositoryFacade interface {
	PersonReader
	PersonWriter
	TransactionReader
	TransactionWriter
}
