package telegram

import (
	"context"
	"errors"
	"strconv"
	"time"

	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/core/services"
	"github.com/aldayn/dayn_backend/internal/middleware"
)

// Poller drives the remote entry channel: it long-polls the Bot API and
// hands each message to the remote entry service. Settings are re-read on
// every cycle, so saving a bot token through the API starts the channel
// without a restart.
type Poller struct {
	client       *Client
	remoteEntry  portssvc.RemoteEntrySvc
	settingsSvc  portssvc.SettingsSvcFacade
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewPoller creates a poller. Run must be started on its own goroutine.
func NewPoller(client *Client, remoteEntry portssvc.RemoteEntrySvc, settingsSvc portssvc.SettingsSvcFacade, pollInterval, pollTimeout time.Duration) *Poller {
	return &Poller{
		client:       client,
		remoteEntry:  remoteEntry,
		settingsSvc:  settingsSvc,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

// Run polls until ctx is cancelled. Poll errors are logged and retried on
// the next cycle; they never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Remote entry poller started")

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Remote entry poller stopped")
			return
		case <-ticker.C:
			if err := p.pollOnce(ctx); err != nil {
				logger.Error("Remote entry poll failed", "error", err)
			}
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context) error {
	settings, err := p.settingsSvc.GetSettings(ctx)
	if err != nil {
		return err
	}
	if settings.BotToken == "" {
		return nil
	}

	cursor, err := p.settingsSvc.GetUpdateCursor(ctx)
	if err != nil {
		return err
	}

	var offset int64
	if cursor > 0 {
		offset = cursor + 1
	}
	updates, err := p.client.GetUpdates(ctx, settings.BotToken, offset, p.pollTimeout)
	if err != nil {
		return err
	}

	for _, update := range updates {
		// The cursor advances before the message is handled. A failure
		// after the entry is recorded must not replay the message on the
		// next cycle; skipping one message is recoverable, booking it
		// twice is not.
		if err := p.settingsSvc.SaveUpdateCursor(ctx, update.UpdateID); err != nil {
			return err
		}
		p.handleUpdate(ctx, settings.BotToken, update)
	}
	return nil
}

// handleUpdate processes one update. Messages from a disallowed sender are
// dropped without a reply; everything else gets the service's localized
// reply text.
func (p *Poller) handleUpdate(ctx context.Context, token string, update Update) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	senderID := strconv.FormatInt(update.Message.Chat.ID, 10)
	reply, err := p.remoteEntry.HandleMessage(ctx, senderID, update.Message.Text)
	if err != nil {
		if errors.Is(err, services.ErrSenderNotAllowed) {
			logger.Warn("Dropping message from disallowed sender", "senderID", senderID)
		} else {
			logger.Error("Failed to handle remote message", "error", err, "senderID", senderID)
		}
		return
	}

	if reply == "" {
		return
	}
	if err := p.client.SendMessage(ctx, token, update.Message.Chat.ID, reply); err != nil {
		logger.Error("Failed to send reply", "error", err, "senderID", senderID)
	}
}
