package services

import "context"

// RemoteEntrySvc handles a single remote-channel message: sender check,
// free-text interpretation, person resolution, then the mutation API.
type RemoteEntrySvc interface {
	// HandleMessage processes one (senderID, freeText) pair and returns the
	// localized reply to send back. A sender that is not the configured
	// allowed id yields ErrSenderNotAllowed from the implementation.
	HandleMessage(ctx context.Context, senderID, text string) (string, error)
}
