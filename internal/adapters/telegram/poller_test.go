package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
)

type MockSettingsService struct {
	mock.Mock
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsService) GetUpdateCursor(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsService) SaveUpdateCursor(ctx context.Context, updateID int64) error {
	args := m.Called(ctx, updateID)
	return args.Error(0)
}

type MockRemoteEntryService struct {
	mock.Mock
}

var _ portssvc.RemoteEntrySvc = (*MockRemoteEntryService)(nil)

func (m *MockRemoteEntryService) HandleMessage(ctx context.Context, senderID, text string) (string, error) {
	args := m.Called(ctx, senderID, text)
	return args.String(0), args.Error(1)
}

// botAPIServer serves one getUpdates batch and accepts sendMessage calls.
func botAPIServer(t *testing.T, updatesJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/botbot-token/getUpdates":
			_, _ = w.Write([]byte(`{"ok":true,"result":` + updatesJSON + `}`))
		case r.URL.Path == "/botbot-token/sendMessage":
			_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
		default:
			t.Errorf("unexpected bot API path %s", r.URL.Path)
		}
	}))
}

func pollerSettings() domain.Settings {
	settings := domain.DefaultSettings()
	settings.BotToken = "bot-token"
	settings.AllowedChatID = "12345"
	return settings
}

func TestPollOnce_CursorAdvancesBeforeHandling(t *testing.T) {
	server := botAPIServer(t, `[{"update_id":10,"message":{"text":"hello","chat":{"id":12345}}}]`)
	defer server.Close()

	settingsSvc := new(MockSettingsService)
	remoteEntry := new(MockRemoteEntryService)

	var calls []string
	settingsSvc.On("GetSettings", mock.Anything).Return(pollerSettings(), nil).Once()
	settingsSvc.On("GetUpdateCursor", mock.Anything).Return(int64(9), nil).Once()
	settingsSvc.On("SaveUpdateCursor", mock.Anything, int64(10)).Run(func(mock.Arguments) {
		calls = append(calls, "cursor")
	}).Return(nil).Once()
	remoteEntry.On("HandleMessage", mock.Anything, "12345", "hello").Run(func(mock.Arguments) {
		calls = append(calls, "handle")
	}).Return("تم التسجيل ✅", nil).Once()

	poller := NewPoller(NewClient(server.URL, time.Second), remoteEntry, settingsSvc, time.Second, time.Second)
	require.NoError(t, poller.pollOnce(context.Background()))

	// The cursor must be stored before the message is booked, otherwise a
	// failure in between would replay an already-recorded entry on the
	// next cycle.
	assert.Equal(t, []string{"cursor", "handle"}, calls)
	settingsSvc.AssertExpectations(t)
	remoteEntry.AssertExpectations(t)
}

func TestPollOnce_CursorSaveFailureSkipsHandling(t *testing.T) {
	server := botAPIServer(t, `[{"update_id":10,"message":{"text":"hello","chat":{"id":12345}}}]`)
	defer server.Close()

	settingsSvc := new(MockSettingsService)
	remoteEntry := new(MockRemoteEntryService)

	settingsSvc.On("GetSettings", mock.Anything).Return(pollerSettings(), nil).Once()
	settingsSvc.On("GetUpdateCursor", mock.Anything).Return(int64(9), nil).Once()
	settingsSvc.On("SaveUpdateCursor", mock.Anything, int64(10)).Return(errors.New("db down")).Once()

	poller := NewPoller(NewClient(server.URL, time.Second), remoteEntry, settingsSvc, time.Second, time.Second)
	err := poller.pollOnce(context.Background())

	require.Error(t, err)
	remoteEntry.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestPollOnce_NoTokenSkipsPolling(t *testing.T) {
	settingsSvc := new(MockSettingsService)
	remoteEntry := new(MockRemoteEntryService)

	settingsSvc.On("GetSettings", mock.Anything).Return(domain.DefaultSettings(), nil).Once()

	poller := NewPoller(NewClient("http://127.0.0.1:0", time.Second), remoteEntry, settingsSvc, time.Second, time.Second)
	require.NoError(t, poller.pollOnce(context.Background()))

	settingsSvc.AssertNotCalled(t, "GetUpdateCursor", mock.Anything)
}
