package repositories

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
)

// SettingsReader defines read operations for settings data
type SettingsReader interface {
	// GetSettings retrieves the stored settings; absent keys come back as
	// their defaults, never as an error.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// GetUpdateCursor retrieves the id of the last processed remote message,
	// or zero when nothing has been processed yet.
	GetUpdateCursor(ctx context.Context) (int64, error)
}

// SettingsWriter defines write operations for settings data
type SettingsWriter interface {
	// SaveSettings persists the full settings record.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// SaveUpdateCursor persists the last processed remote message id.
	SaveUpdateCursor(ctx context.Context, updateID int64) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
