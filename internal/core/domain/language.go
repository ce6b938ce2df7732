package domain

import "fmt"

// Language is the interface language for labels, advisor replies and bot
// confirmations.
type Language string

const (
	LanguageAr Language = "ar"
	LanguageEn Language = "en"
)

// DefaultLanguage matches the application's original audience.
const DefaultLanguage = LanguageAr

// IsValid reports whether the code is a supported interface language.
func (l Language) IsValid() bool {
	return l == LanguageAr || l == LanguageEn
}

// ParseLanguage validates a raw language code.
func ParseLanguage(raw string) (Language, error) {
	l := Language(raw)
	if !l.IsValid() {
		return "", fmt.Errorf("unsupported language code %q", raw)
	}
	return l, nil
}
