package pgsql

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
)

// PgxSettingsRepository serves application settings and the remote-entry
// cursor out of the shared state store.
type PgxSettingsRepository struct {
	store *stateStore
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func newPgxSettingsRepository(store *stateStore) *PgxSettingsRepository {
	return &PgxSettingsRepository{store: store}
}

func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.settings, nil
}

// SaveSettings writes each settings field under its own key, all inside one
// database transaction. The in-memory record is restored if the save fails,
// so a partial save never becomes visible to readers or survives a restart.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev := r.store.settings
	r.store.settings = settings

	err := r.store.persistMany(ctx,
		stateEntry{stateKeyDefaultCurrency, string(settings.DefaultCurrency)},
		stateEntry{stateKeyLanguage, string(settings.Language)},
		stateEntry{stateKeyBotToken, settings.BotToken},
		stateEntry{stateKeyAllowedChatID, settings.AllowedChatID},
	)
	if err != nil {
		r.store.settings = prev
		return err
	}
	return nil
}

func (r *PgxSettingsRepository) GetUpdateCursor(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.lastUpdateID, nil
}

func (r *PgxSettingsRepository) SaveUpdateCursor(ctx context.Context, updateID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev := r.store.lastUpdateID
	r.store.lastUpdateID = updateID
	if err := r.store.persist(ctx, stateKeyLastUpdateID, updateID); err != nil {
		r.store.lastUpdateID = prev
		return err
	}
	return nil
}
