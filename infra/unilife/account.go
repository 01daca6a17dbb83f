package unilife

import (
	"context"
	"encoding/json"
	"fmt"
)

// accountService implements app.AccountService using the Unilife API.
type accountService struct {
	client *Client
}

// NewAccountService creates an AccountService backed by the platform.
func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

func (s *accountService) CurrentAccountID(_ context.Context) (string, error) {
	data, err := s.client.Get("/api/v1/accounts/me")
	if err != nil {
		return "", fmt.Errorf("fetching account: %w", err)
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parsing account: %w", err)
	}
	return resp.ID, nil
}
