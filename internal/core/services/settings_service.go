package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

// Ensure settingsService implements the SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a partial update: nil fields keep their stored
// value. Currency and language codes are validated before anything persists.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for update: %w", err)
	}

	if req.DefaultCurrency != nil {
		currency, err := domain.ParseCurrency(*req.DefaultCurrency)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		settings.DefaultCurrency = currency
	}
	if req.Language != nil {
		language, err := domain.ParseLanguage(*req.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		settings.Language = language
	}
	if req.BotToken != nil {
		settings.BotToken = *req.BotToken
	}
	if req.AllowedChatID != nil {
		settings.AllowedChatID = *req.AllowedChatID
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.LogInfo(ctx, "Settings updated",
		slog.String("default_currency", string(settings.DefaultCurrency)),
		slog.String("language", string(settings.Language)))
	return &settings, nil
}

func (s *settingsService) GetUpdateCursor(ctx context.Context) (int64, error) {
	return s.settingsRepo.GetUpdateCursor(ctx)
}

func (s *settingsService) SaveUpdateCursor(ctx context.Context, updateID int64) error {
	return s.settingsRepo.SaveUpdateCursor(ctx, updateID)
}
