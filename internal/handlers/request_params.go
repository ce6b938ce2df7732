package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
)

// resolveDisplayCurrency reads the optional ?currency= query parameter,
// falling back to the stored default currency when absent. A bad code maps
// to apperrors.ErrValidation so callers answer 400.
func resolveDisplayCurrency(ctx context.Context, c *gin.Context, settingsService portssvc.SettingsReaderSvc) (domain.Currency, error) {
	if raw := c.Query("currency"); raw != "" {
		currency, err := domain.ParseCurrency(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		return currency, nil
	}

	settings, err := settingsService.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return settings.DefaultCurrency, nil
}
