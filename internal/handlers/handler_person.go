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

// personHandler handles HTTP requests related to people.
type personHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvc
	settingsService  portssvc.SettingsReaderSvc
}

// newPersonHandler creates a new personHandler.
func newPersonHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvc, ss portssvc.SettingsReaderSvc) *personHandler {
	return &personHandler{
		ledgerService:    ls,
		reportingService: rs,
		settingsService:  ss,
	}
}

// registerPersonRoutes registers routes related to people.
func registerPersonRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingSvc, settingsService portssvc.SettingsReaderSvc) {
	h := newPersonHandler(ledgerService, reportingService, settingsService)

	people := rg.Group("/people")
	{
		people.POST("", h.createPerson)
		people.GET("", h.listPeople)
		people.GET("/:personID", h.getPerson)
		people.DELETE("/:personID", h.deletePerson)
	}
}

// createPerson godoc
// @Summary Register a new person
// @Description Adds a person to track debts against
// @Tags people
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create person"
// @Security BearerAuth
// @Router /people [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	person, err := h.ledgerService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating person", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create person in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		}
		return
	}

	logger.Info("Person created successfully", slog.String("person_id", person.PersonID))
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// listPeople godoc
// @Summary List people with balances
// @Description Lists every person with their balance in the display currency
// @Tags people
// @Produce  json
// @Param   currency query string false "Display currency code, defaults to the stored default"
// @Success 200 {array} dto.PersonBalanceResponse
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Failure 500 {object} map[string]string "Failed to list people"
// @Security BearerAuth
// @Router /people [get]
func (h *personHandler) listPeople(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := resolveDisplayCurrency(c.Request.Context(), c, h.settingsService)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve display currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list people"})
		}
		return
	}

	balances, err := h.reportingService.PersonBalances(c.Request.Context(), currency)
	if err != nil {
		logger.Error("Failed to list person balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list people"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPersonBalanceResponse(balances))
}

// getPerson godoc
// @Summary Get one person's detail
// @Description Returns the person, their per-currency summaries and their transactions
// @Tags people
// @Produce  json
// @Param   personID path string true "Person ID"
// @Success 200 {object} dto.PersonDetailResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to get person"
// @Security BearerAuth
// @Router /people/{personID} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	person, err := h.ledgerService.GetPersonByID(c.Request.Context(), personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else {
			logger.Error("Failed to get person", slog.String("error", err.Error()), slog.String("person_id", personID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get person"})
		}
		return
	}

	summaries, err := h.reportingService.PersonSummary(c.Request.Context(), personID)
	if err != nil {
		logger.Error("Failed to summarize person", slog.String("error", err.Error()), slog.String("person_id", personID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get person"})
		return
	}

	transactions, err := h.ledgerService.ListTransactionsByPerson(c.Request.Context(), personID)
	if err != nil {
		logger.Error("Failed to list person transactions", slog.String("error", err.Error()), slog.String("person_id", personID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get person"})
		return
	}

	c.JSON(http.StatusOK, dto.PersonDetailResponse{
		PersonResponse: dto.ToPersonResponse(person),
		Summaries:      dto.ToListCurrencySummaryResponse(summaries),
		Transactions:   dto.ToListTransactionResponse(transactions),
	})
}

// deletePerson godoc
// @Summary Delete a person
// @Description Removes the person and every transaction recorded against them
// @Tags people
// @Param   personID path string true "Person ID"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Failed to delete person"
// @Security BearerAuth
// @Router /people/{personID} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	if err := h.ledgerService.DeletePerson(c.Request.Context(), personID); err != nil {
		logger.Error("Failed to delete person", slog.String("error", err.Error()), slog.String("person_id", personID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		return
	}

	logger.Info("Person deleted", slog.String("person_id", personID))
	c.Status(http.StatusNoContent)
}
