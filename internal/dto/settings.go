package dto

import "github.com/aldayn/dayn_backend/internal/core/domain"

// UpdateSettingsRequest applies a partial settings update; nil fields are
// left unchanged.
type UpdateSettingsRequest struct {
	DefaultCurrency *string `json:"defaultCurrency" binding:"omitempty,currencycode"`
	Language        *string `json:"language" binding:"omitempty,oneof=ar en"`
	BotToken        *string `json:"botToken"`
	AllowedChatID   *string `json:"allowedChatID"`
}

// SettingsResponse defines the data returned for the stored settings.
type SettingsResponse struct {
	DefaultCurrency string `json:"defaultCurrency"`
	Language        string `json:"language"`
	BotToken        string `json:"botToken"`
	AllowedChatID   string `json:"allowedChatID"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		DefaultCurrency: string(s.DefaultCurrency),
		Language:        string(s.Language),
		BotToken:        s.BotToken,
		AllowedChatID:   s.AllowedChatID,
	}
}

// CurrencyConfigResponse defines one catalog entry returned to clients.
type CurrencyConfigResponse struct {
	Code    string `json:"code"`
	LabelAr string `json:"labelAr"`
	LabelEn string `json:"labelEn"`
	Symbol  string `json:"symbol"`
	Flag    string `json:"flag"`
}

// ToListCurrencyConfigResponse converts the domain currency catalog.
func ToListCurrencyConfigResponse(catalog []domain.CurrencyConfig) []CurrencyConfigResponse {
	res := make([]CurrencyConfigResponse, len(catalog))
	for i, c := range catalog {
		res[i] = CurrencyConfigResponse{
			Code:    string(c.Code),
			LabelAr: c.LabelAr,
			LabelEn: c.LabelEn,
			Symbol:  c.Symbol,
			Flag:    c.Flag,
		}
	}
	return res
}
