package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
	"github.com/aldayn/dayn_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for the computed aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	settingsService  portssvc.SettingsReaderSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc, ss portssvc.SettingsReaderSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		settingsService:  ss,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, settingsService portssvc.SettingsReaderSvc) {
	h := newReportingHandler(reportingService, settingsService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Get the global summary
// @Description Returns totals owed to and by the owner in one display currency
// @Tags reports
// @Produce  json
// @Param   currency query string false "Display currency code, defaults to the stored default"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := resolveDisplayCurrency(c.Request.Context(), c, h.settingsService)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve display currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}

	report, err := h.reportingService.Overview(c.Request.Context(), currency)
	if err != nil {
		logger.Error("Failed to compute overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(report))
}
