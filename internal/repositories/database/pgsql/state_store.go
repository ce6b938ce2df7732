package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/models"
)

// stateDB is the slice of pgxpool.Pool the store needs. Taking an interface
// keeps the write paths testable without a live database.
type stateDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Logical names of the persisted state rows. The layout is one app_state row
// per key with a JSONB value; loaders tolerate the absence of any key.
const (
	stateKeyPeople          = "people"
	stateKeyTransactions    = "transactions"
	stateKeyDefaultCurrency = "default_currency"
	stateKeyLanguage        = "language"
	stateKeyBotToken        = "bot_token"
	stateKeyAllowedChatID   = "allowed_chat_id"
	stateKeyLastUpdateID    = "last_update_id"
)

// stateStore owns the canonical in-memory collections and writes them back
// to the app_state table on every successful mutation. One RWMutex guards
// everything: HTTP handlers and the poller goroutine share this store.
type stateStore struct {
	db stateDB

	mu           sync.RWMutex
	people       []models.Person
	transactions []models.Transaction
	settings     domain.Settings
	lastUpdateID int64
}

func newStateStore(db stateDB) *stateStore {
	return &stateStore{
		db:       db,
		settings: domain.DefaultSettings(),
	}
}

// load reads every stored key into memory. Unknown keys are ignored and
// missing keys keep their defaults, so state written by older versions of
// the application loads cleanly.
func (s *stateStore) load(ctx context.Context) error {
	rows, err := s.db.Query(ctx, `SELECT key, value FROM app_state;`)
	if err != nil {
		return fmt.Errorf("failed to query app_state: %w", err)
	}
	defer rows.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return fmt.Errorf("failed to scan app_state row: %w", err)
		}
		if err := s.applyLoadedKey(key, raw); err != nil {
			return fmt.Errorf("failed to decode app_state key %s: %w", key, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate app_state rows: %w", err)
	}
	return nil
}

func (s *stateStore) applyLoadedKey(key string, raw []byte) error {
	switch key {
	case stateKeyPeople:
		return json.Unmarshal(raw, &s.people)
	case stateKeyTransactions:
		return json.Unmarshal(raw, &s.transactions)
	case stateKeyDefaultCurrency:
		var code string
		if err := json.Unmarshal(raw, &code); err != nil {
			return err
		}
		if currency, err := domain.ParseCurrency(code); err == nil {
			s.settings.DefaultCurrency = currency
		} else {
			slog.Warn("Ignoring stored default currency", slog.String("code", code))
		}
	case stateKeyLanguage:
		var code string
		if err := json.Unmarshal(raw, &code); err != nil {
			return err
		}
		if language, err := domain.ParseLanguage(code); err == nil {
			s.settings.Language = language
		} else {
			slog.Warn("Ignoring stored language", slog.String("code", code))
		}
	case stateKeyBotToken:
		return json.Unmarshal(raw, &s.settings.BotToken)
	case stateKeyAllowedChatID:
		return json.Unmarshal(raw, &s.settings.AllowedChatID)
	case stateKeyLastUpdateID:
		return json.Unmarshal(raw, &s.lastUpdateID)
	default:
		slog.Warn("Ignoring unknown app_state key", slog.String("key", key))
	}
	return nil
}

const upsertStateQuery = `
	INSERT INTO app_state (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET
		value = EXCLUDED.value,
		updated_at = EXCLUDED.updated_at;
`

// stateEntry pairs one key with the value to store under it.
type stateEntry struct {
	key   string
	value any
}

// persist writes one key's value. Callers hold the write lock and roll back
// their in-memory change if this fails, so a failed save never leaves the
// collections and the stored state out of step.
func (s *stateStore) persist(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode app_state key %s: %w", key, err)
	}
	if _, err := s.db.Exec(ctx, upsertStateQuery, key, raw); err != nil {
		return fmt.Errorf("failed to save app_state key %s: %w", key, err)
	}
	return nil
}

// persistMany writes several keys inside one database transaction. Writers
// that touch related keys, the person delete cascade and the settings save,
// go through here so the stored rows never disagree after a failure partway
// through.
func (s *stateStore) persistMany(ctx context.Context, entries ...stateEntry) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin app_state transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, entry := range entries {
		raw, err := json.Marshal(entry.value)
		if err != nil {
			return fmt.Errorf("failed to encode app_state key %s: %w", entry.key, err)
		}
		if _, err := tx.Exec(ctx, upsertStateQuery, entry.key, raw); err != nil {
			return fmt.Errorf("failed to save app_state key %s: %w", entry.key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit app_state transaction: %w", err)
	}
	return nil
}
