package pgsql

import (
	"context"
	"strings"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
	"github.com/aldayn/dayn_backend/internal/utils/mapping"
)

// PgxLedgerRepository serves people and transactions out of the shared
// state store.
type PgxLedgerRepository struct {
	store *stateStore
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func newPgxLedgerRepository(store *stateStore) *PgxLedgerRepository {
	return &PgxLedgerRepository{store: store}
}

func (r *PgxLedgerRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.people {
		if r.store.people[i].ID == personID {
			person := mapping.ToDomainPerson(r.store.people[i])
			return &person, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *PgxLedgerRepository) FindPersonByName(ctx context.Context, name string) (*domain.Person, error) {
	trimmed := strings.TrimSpace(name)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.people {
		if strings.EqualFold(strings.TrimSpace(r.store.people[i].Name), trimmed) {
			person := mapping.ToDomainPerson(r.store.people[i])
			return &person, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *PgxLedgerRepository) ListPersons(ctx context.Context) ([]domain.Person, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return mapping.ToDomainPersons(r.store.people), nil
}

func (r *PgxLedgerRepository) SavePerson(ctx context.Context, person domain.Person) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.people = append(r.store.people, mapping.ToModelPerson(person))
	if err := r.store.persist(ctx, stateKeyPeople, r.store.people); err != nil {
		r.store.people = r.store.people[:len(r.store.people)-1]
		return err
	}
	return nil
}

// DeletePerson removes the person together with every transaction recorded
// against them. Both collections are stored in one database transaction and
// roll back together on failure, so a transaction row never outlives its
// person.
func (r *PgxLedgerRepository) DeletePerson(ctx context.Context, personID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prevPeople := r.store.people
	prevTransactions := r.store.transactions

	keptPeople := prevPeople[:0:0]
	for i := range prevPeople {
		if prevPeople[i].ID != personID {
			keptPeople = append(keptPeople, prevPeople[i])
		}
	}
	keptTransactions := prevTransactions[:0:0]
	for i := range prevTransactions {
		if prevTransactions[i].PersonID != personID {
			keptTransactions = append(keptTransactions, prevTransactions[i])
		}
	}

	r.store.people = keptPeople
	r.store.transactions = keptTransactions
	err := r.store.persistMany(ctx,
		stateEntry{stateKeyPeople, r.store.people},
		stateEntry{stateKeyTransactions, r.store.transactions},
	)
	if err != nil {
		r.store.people = prevPeople
		r.store.transactions = prevTransactions
		return err
	}
	return nil
}

func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].ID == transactionID {
			txn := mapping.ToDomainTransaction(r.store.transactions[i])
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *PgxLedgerRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return mapping.ToDomainTransactions(r.store.transactions), nil
}

func (r *PgxLedgerRepository) ListTransactionsByPerson(ctx context.Context, personID string) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]domain.Transaction, 0)
	for i := range r.store.transactions {
		if r.store.transactions[i].PersonID == personID {
			matched = append(matched, mapping.ToDomainTransaction(r.store.transactions[i]))
		}
	}
	return matched, nil
}

func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.transactions = append(r.store.transactions, mapping.ToModelTransaction(txn))
	if err := r.store.persist(ctx, stateKeyTransactions, r.store.transactions); err != nil {
		r.store.transactions = r.store.transactions[:len(r.store.transactions)-1]
		return err
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev := r.store.transactions
	kept := prev[:0:0]
	for i := range prev {
		if prev[i].ID != transactionID {
			kept = append(kept, prev[i])
		}
	}

	r.store.transactions = kept
	if err := r.store.persist(ctx, stateKeyTransactions, r.store.transactions); err != nil {
		r.store.transactions = prev
		return err
	}
	return nil
}
