package services

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/dto"
)

// SettingsReaderSvc defines read operations for settings.
type SettingsReaderSvc interface {
	// GetSettings retrieves the current settings, with defaults substituted
	// for anything never persisted.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// GetUpdateCursor retrieves the last processed remote message id.
	GetUpdateCursor(ctx context.Context) (int64, error)
}

// SettingsWriterSvc defines write operations for settings.
type SettingsWriterSvc interface {
	// UpdateSettings applies a partial update and persists the result.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)

	// SaveUpdateCursor persists the last processed remote message id.
	SaveUpdateCursor(ctx context.Context, updateID int64) error
}

// SettingsSvcFacade combines all settings-related service interfaces.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
