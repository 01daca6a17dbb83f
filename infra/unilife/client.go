package unilife

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashmitb/unistory/domain"
	"github.com/ashmitb/unistory/infra/auth"
)

// Client is a thin HTTP wrapper for the Unilife platform API.
// It handles base URL construction, bearer token injection, and debug
// logging. The TUI owns the terminal, so the logger must write to a file.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	http          *http.Client
	log           zerolog.Logger
}

// NewClient creates a Unilife API client.
func NewClient(baseURL string, tp auth.TokenProvider, log zerolog.Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		tokenProvider: tp,
		http:          &http.Client{Timeout: 15 * time.Second},
		log:           log,
	}
}

// Get performs an authenticated GET request.
func (c *Client) Get(path string) ([]byte, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs an authenticated POST request.
func (c *Client) Post(path string, body io.Reader) ([]byte, error) {
	return c.do(http.MethodPost, path, body)
}

// Delete performs an authenticated DELETE request.
func (c *Client) Delete(path string) ([]byte, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *Client) do(method, path string, body io.Reader) ([]byte, error) {
	token, err := c.tokenProvider.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	url := c.baseURL + path

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("API %s %s: %w", method, path, domain.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("API %s %s: %w", method, path, domain.ErrNotOwner)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("API %s %s returned %d: %s", method, path, resp.StatusCode, string(data))
	}

	return data, nil
}
