package services

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/core/domain"
)

// AdvisorSvc answers free-text questions about the ledger owner's position
// using the global summary snapshot. Failures of the completion backend are
// absorbed into a fixed, localized fallback string.
type AdvisorSvc interface {
	Ask(ctx context.Context, question string) (string, error)
}

// TextCompletionClient is the outbound port to the generative model used by
// the advisor. The response is treated as opaque display text.
type TextCompletionClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// EntryInterpreterClient is the outbound port that turns a free-text remote
// message into a structured entry command.
type EntryInterpreterClient interface {
	InterpretEntry(ctx context.Context, text string, language domain.Language) (*domain.EntryCommand, error)
}
