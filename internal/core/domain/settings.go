package domain

import "github.com/shopspring/decimal"

// Settings holds the process-wide preferences and the remote-channel
// credentials. Absent persisted values fall back to DefaultSettings.
type Settings struct {
	DefaultCurrency Currency `json:"defaultCurrency"`
	Language        Language `json:"language"`
	BotToken        string   `json:"botToken"`
	AllowedChatID   string   `json:"allowedChatID"`
}

// DefaultSettings returns the values used when nothing has been persisted.
func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency: BaseCurrency,
		Language:        DefaultLanguage,
	}
}

// EntryCommand is the structured form of a free-text remote entry message
// after interpretation, ready for the mutation API.
type EntryCommand struct {
	PersonName string
	Amount     decimal.Decimal
	Type       TransactionType
	Currency   Currency // Empty means "use the process-wide default"
	Note       string
}
