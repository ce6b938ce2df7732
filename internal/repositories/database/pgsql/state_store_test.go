package pgsql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldayn/dayn_backend/internal/core/domain"
)

func TestApplyLoadedKey_Collections(t *testing.T) {
	store := newStateStore(nil)

	require.NoError(t, store.applyLoadedKey(stateKeyPeople, []byte(`[
		{"id":"p-1","name":"Ahmad","createdAt":"2024-01-01T00:00:00Z"}
	]`)))
	require.NoError(t, store.applyLoadedKey(stateKeyTransactions, []byte(`[
		{"id":"t-1","personId":"p-1","amount":"100","type":"give","currency":"USD","date":"2024-01-02T00:00:00Z"},
		{"id":"t-2","personId":"p-1","amount":40,"type":"take","date":"2024-01-03T00:00:00Z"}
	]`)))

	require.Len(t, store.people, 1)
	assert.Equal(t, "Ahmad", store.people[0].Name)

	require.Len(t, store.transactions, 2)
	assert.True(t, store.transactions[0].Amount.Equal(decimal.RequireFromString("100")))
	// Legacy record: no currency tag stored.
	assert.Empty(t, store.transactions[1].Currency)
}

func TestApplyLoadedKey_Settings(t *testing.T) {
	store := newStateStore(nil)

	require.NoError(t, store.applyLoadedKey(stateKeyDefaultCurrency, []byte(`"USD"`)))
	require.NoError(t, store.applyLoadedKey(stateKeyLanguage, []byte(`"en"`)))
	require.NoError(t, store.applyLoadedKey(stateKeyBotToken, []byte(`"bot-token"`)))
	require.NoError(t, store.applyLoadedKey(stateKeyAllowedChatID, []byte(`"12345"`)))
	require.NoError(t, store.applyLoadedKey(stateKeyLastUpdateID, []byte(`77`)))

	assert.Equal(t, domain.CurrencyUSD, store.settings.DefaultCurrency)
	assert.Equal(t, domain.LanguageEn, store.settings.Language)
	assert.Equal(t, "bot-token", store.settings.BotToken)
	assert.Equal(t, "12345", store.settings.AllowedChatID)
	assert.Equal(t, int64(77), store.lastUpdateID)
}

func TestApplyLoadedKey_InvalidCodesKeepDefaults(t *testing.T) {
	store := newStateStore(nil)

	require.NoError(t, store.applyLoadedKey(stateKeyDefaultCurrency, []byte(`"EUR"`)))
	require.NoError(t, store.applyLoadedKey(stateKeyLanguage, []byte(`"fr"`)))

	assert.Equal(t, domain.BaseCurrency, store.settings.DefaultCurrency)
	assert.Equal(t, domain.DefaultLanguage, store.settings.Language)
}

func TestApplyLoadedKey_UnknownKeyIgnored(t *testing.T) {
	store := newStateStore(nil)
	require.NoError(t, store.applyLoadedKey("theme", []byte(`"dark"`)))
}

func TestApplyLoadedKey_MalformedValue(t *testing.T) {
	store := newStateStore(nil)
	assert.Error(t, store.applyLoadedKey(stateKeyPeople, []byte(`{"not":"an array"}`)))
}
