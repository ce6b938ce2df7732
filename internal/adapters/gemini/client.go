package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/aldayn/dayn_backend/internal/core/domain"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
)

// Client talks to the Gemini API for both advisor answers and remote entry
// interpretation.
type Client struct {
	genaiClient *genai.Client
	model       string
}

var _ portssvc.TextCompletionClient = (*Client)(nil)
var _ portssvc.EntryInterpreterClient = (*Client)(nil)

// NewClient creates a Gemini-backed client for the given model name.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{genaiClient: genaiClient, model: model}, nil
}

// GenerateText sends a single-turn prompt and returns the model's text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// entryPayload is the JSON object the interpretation prompt asks the model
// to return.
type entryPayload struct {
	PersonName string      `json:"personName"`
	Amount     json.Number `json:"amount"`
	Type       string      `json:"type"`
	Currency   *string     `json:"currency"`
	Note       string      `json:"note"`
}

// InterpretEntry turns a free-text message into a structured entry command.
// The prompt demands strict JSON; markdown fences are stripped before
// decoding in case the model ignores that.
func (c *Client) InterpretEntry(ctx context.Context, text string, language domain.Language) (*domain.EntryCommand, error) {
	raw, err := c.GenerateText(ctx, buildInterpretPrompt(text, language))
	if err != nil {
		return nil, err
	}

	var payload entryPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode entry payload: %w\nraw response: %s", err, raw)
	}
	return payloadToCommand(payload)
}

func buildInterpretPrompt(text string, language domain.Language) string {
	noteLanguage := "Arabic"
	if language == domain.LanguageEn {
		noteLanguage = "English"
	}

	var b strings.Builder
	b.WriteString("You are a data entry parser for a personal debt ledger.\n")
	b.WriteString("The user message may be in Arabic or English. Extract one debt entry from it.\n\n")
	b.WriteString("Message:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn STRICT JSON only, a single object with these fields:\n")
	b.WriteString("- \"personName\": string, the counterpart's name as written in the message\n")
	b.WriteString("- \"amount\": number, positive\n")
	b.WriteString("- \"type\": \"give\" if the user gave or lent money, \"take\" if the user took or borrowed money\n")
	b.WriteString("- \"currency\": \"SAR\", \"USD\", \"SYP\", or null when the message names no currency\n")
	b.WriteString("- \"note\": string in " + noteLanguage + ", any remaining detail, or \"\"\n\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Do NOT use ```json or any Markdown.\n")
	b.WriteString("Output must begin with \"{\" and end with \"}\".\n")
	return b.String()
}

func payloadToCommand(payload entryPayload) (*domain.EntryCommand, error) {
	name := strings.TrimSpace(payload.PersonName)
	if name == "" {
		return nil, fmt.Errorf("entry payload has no person name")
	}

	amount, err := decimal.NewFromString(payload.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("entry payload has invalid amount %q: %w", payload.Amount.String(), err)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("entry payload amount must be positive, got %s", amount)
	}

	txnType, err := domain.ParseTransactionType(payload.Type)
	if err != nil {
		return nil, fmt.Errorf("entry payload has invalid type %q", payload.Type)
	}

	var currency domain.Currency
	if payload.Currency != nil && *payload.Currency != "" {
		currency, err = domain.ParseCurrency(*payload.Currency)
		if err != nil {
			return nil, fmt.Errorf("entry payload has invalid currency %q", *payload.Currency)
		}
	}

	return &domain.EntryCommand{
		PersonName: name,
		Amount:     amount,
		Type:       txnType,
		Currency:   currency,
		Note:       strings.TrimSpace(payload.Note),
	}, nil
}

// cleanModelJSON strips markdown fences from a model response that ignored
// the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
