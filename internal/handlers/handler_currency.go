package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	"github.com/aldayn/dayn_backend/internal/dto"
)

// currencyHandler serves the fixed currency catalog.
type currencyHandler struct{}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup) {
	h := &currencyHandler{}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the fixed currency catalog with labels, symbols and flags
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyConfigResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyConfigResponse(domain.Currencies()))
}
