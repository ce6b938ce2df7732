package domain

import "fmt"

// Currency is a supported currency code. The catalog is closed: records with
// any other code are rejected at the mutation boundary.
type Currency string

const (
	CurrencySAR Currency = "SAR"
	CurrencyUSD Currency = "USD"
	CurrencySYP Currency = "SYP"
)

// BaseCurrency is the fixed fallback applied to stored transactions that
// predate the currency field. This intentionally does not follow the
// user-selected default currency, which can change over time.
const BaseCurrency = CurrencySAR

// CurrencyConfig describes a catalog entry: display labels per interface
// language, plus symbol and flag for rendering.
type CurrencyConfig struct {
	Code    Currency `json:"code"`
	LabelAr string   `json:"labelAr"`
	LabelEn string   `json:"labelEn"`
	Symbol  string   `json:"symbol"`
	Flag    string   `json:"flag"`
}

// currencyCatalog is ordered; list endpoints and summaries iterate it so
// output order is stable.
var currencyCatalog = []CurrencyConfig{
	{Code: CurrencySAR, LabelAr: "ريال سعودي", LabelEn: "Saudi Riyal", Symbol: "SAR", Flag: "🇸🇦"},
	{Code: CurrencyUSD, LabelAr: "دولار أمريكي", LabelEn: "US Dollar", Symbol: "$", Flag: "🇺🇸"},
	{Code: CurrencySYP, LabelAr: "ليرة سورية", LabelEn: "Syrian Pound", Symbol: "SYP", Flag: "🇸🇾"},
}

// Currencies returns the full catalog in display order.
func Currencies() []CurrencyConfig {
	out := make([]CurrencyConfig, len(currencyCatalog))
	copy(out, currencyCatalog)
	return out
}

// Config returns the catalog entry for the currency.
func (c Currency) Config() (CurrencyConfig, bool) {
	for _, cfg := range currencyCatalog {
		if cfg.Code == c {
			return cfg, true
		}
	}
	return CurrencyConfig{}, false
}

// IsValid reports whether the code is part of the closed catalog.
func (c Currency) IsValid() bool {
	_, ok := c.Config()
	return ok
}

// Label returns the display label for the given interface language.
func (cc CurrencyConfig) Label(lang Language) string {
	if lang == LanguageAr {
		return cc.LabelAr
	}
	return cc.LabelEn
}

// ParseCurrency validates a raw currency code.
func ParseCurrency(raw string) (Currency, error) {
	c := Currency(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported currency code %q", raw)
	}
	return c, nil
}
