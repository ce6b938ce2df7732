package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/aldayn/dayn_backend/internal/core/domain"
)

// RegisterCustomValidators wires the domain-specific binding rules into
// gin's validator. Call once before routes are registered.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", validateCurrencyCode)
	}
}

// validateCurrencyCode accepts only codes present in the currency catalog.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.Currency(fl.Field().String()).IsValid()
}
