package app

import "context"

// ConversationService carries story replies and reactions over the
// platform's existing direct-messaging channel.
type ConversationService interface {
	// ResolveDirect returns the conversation with the given counterparty,
	// creating it when none exists yet.
	ResolveDirect(ctx context.Context, counterpartyID string) (conversationID string, err error)

	// SendMessage posts a text message into a conversation. The body may be
	// plain text or a wire.Envelope frame; the channel does not care.
	SendMessage(ctx context.Context, conversationID, body string) error
}
