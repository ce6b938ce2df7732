package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIBaseURL is the production Telegram Bot API endpoint. Tests point
// the client at an httptest server instead.
const DefaultAPIBaseURL = "https://api.telegram.org"

// Update is one long-poll result. Only message updates carry content we act
// on; everything else still advances the cursor.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is the subset of the Bot API message object the poller needs.
type Message struct {
	Text string `json:"text"`
	Chat Chat   `json:"chat"`
}

// Chat identifies where a message came from.
type Chat struct {
	ID int64 `json:"id"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// Client is a minimal Telegram Bot API client. The bot token comes from the
// stored settings and is passed per call, so a token change applies without
// a restart.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given API base URL. The HTTP
// timeout must exceed the long-poll timeout handed to GetUpdates.
func NewClient(baseURL string, pollTimeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: pollTimeout + 10*time.Second},
	}
}

// GetUpdates long-polls for updates with ids greater than or equal to offset.
func (c *Client) GetUpdates(ctx context.Context, token string, offset int64, timeout time.Duration) ([]Update, error) {
	params := url.Values{}
	if offset > 0 {
		params.Set("offset", strconv.FormatInt(offset, 10))
	}
	params.Set("timeout", strconv.Itoa(int(timeout.Seconds())))

	var updates []Update
	if err := c.call(ctx, token, "getUpdates", params, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessage sends a plain-text reply to the given chat.
func (c *Client) SendMessage(ctx context.Context, token string, chatID int64, text string) error {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))
	params.Set("text", text)

	return c.call(ctx, token, "sendMessage", params, nil)
}

func (c *Client) call(ctx context.Context, token, method string, params url.Values, result any) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, token, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !body.OK {
		return fmt.Errorf("%s failed: %s", method, body.Description)
	}
	if result != nil {
		if err := json.Unmarshal(body.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}
