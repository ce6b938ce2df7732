package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
	"github.com/aldayn/dayn_backend/internal/middleware"
)

// advisorHandler handles HTTP requests for the advisory chat.
type advisorHandler struct {
	advisorService portssvc.AdvisorSvc
}

// newAdvisorHandler creates a new advisorHandler.
func newAdvisorHandler(as portssvc.AdvisorSvc) *advisorHandler {
	return &advisorHandler{
		advisorService: as,
	}
}

// registerAdvisorRoutes registers routes related to the advisor. The whole
// group sits behind the rate limiter so completion calls stay bounded.
func registerAdvisorRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvc, advisorLimiter *limiter.Limiter) {
	h := newAdvisorHandler(advisorService)

	advisor := rg.Group("/advisor", middleware.RateLimit(advisorLimiter))
	{
		advisor.POST("/ask", h.ask)
	}
}

// ask godoc
// @Summary Ask the financial advisor
// @Description Answers a free-text question about the owner's overall position
// @Tags advisor
// @Accept  json
// @Produce  json
// @Param   question body dto.AskAdvisorRequest true "Free-text question"
// @Success 200 {object} dto.AdvisorResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to answer"
// @Security BearerAuth
// @Router /advisor/ask [post]
func (h *advisorHandler) ask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AskAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Ask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	answer, err := h.advisorService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		logger.Error("Failed to answer advisor question", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer"})
		return
	}

	c.JSON(http.StatusOK, dto.AdvisorResponse{Answer: answer})
}
