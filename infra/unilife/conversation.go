package unilife

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/ashmitb/unistory/domain"
)

// conversationService implements app.ConversationService using the
// Unilife direct-messaging API.
type conversationService struct {
	client *Client
}

// NewConversationService creates a ConversationService backed by the platform.
func NewConversationService(client *Client) *conversationService {
	return &conversationService{client: client}
}

func (s *conversationService) ResolveDirect(_ context.Context, counterpartyID string) (string, error) {
	counterpartyID = strings.TrimSpace(counterpartyID)
	if counterpartyID == "" {
		return "", fmt.Errorf("resolving conversation: empty counterparty id")
	}

	payload, err := json.Marshal(map[string]string{"counterparty_id": counterpartyID})
	if err != nil {
		return "", fmt.Errorf("encoding resolve request: %w", err)
	}

	// The endpoint is find-or-create: the platform returns the existing
	// direct conversation when one already exists.
	data, err := s.client.Post("/api/v1/conversations/direct", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("resolving conversation: %w", err)
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parsing conversation: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("resolving conversation: server returned no id")
	}
	return resp.ID, nil
}

func (s *conversationService) SendMessage(_ context.Context, conversationID, body string) error {
	if strings.TrimSpace(body) == "" {
		return domain.ErrEmptyReply
	}

	// The client message ID lets the server dedupe retried sends.
	payload, err := json.Marshal(map[string]string{
		"client_msg_id": uuid.NewString(),
		"body":          body,
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	path := fmt.Sprintf("/api/v1/conversations/%s/messages", url.PathEscape(conversationID))
	if _, err := s.client.Post(path, bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
