package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider loads the stored application state into memory and
// returns repositories backed by it. Both repositories share one store, so
// a person delete and its transaction cascade observe the same lock.
func NewRepositoryProvider(ctx context.Context, dbPool *pgxpool.Pool) (portsrepo.RepositoryProvider, error) {
	store := newStateStore(dbPool)
	if err := store.load(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to load application state: %w", err)
	}

	return portsrepo.RepositoryProvider{
		LedgerRepo:   newPgxLedgerRepository(store),
		SettingsRepo: newPgxSettingsRepository(store),
	}, nil
}
