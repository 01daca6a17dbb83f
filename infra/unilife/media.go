package unilife

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ashmitb/unistory/domain"
)

// mediaService implements app.MediaService against the platform's media
// metadata endpoint. The endpoint blocks until the asset is decodable, so
// one call doubles as both the readiness wait and the duration probe.
type mediaService struct {
	client *Client
}

// NewMediaService creates a MediaService backed by the platform.
func NewMediaService(client *Client) *mediaService {
	return &mediaService{client: client}
}

func (s *mediaService) Probe(_ context.Context, item domain.Item) (int, error) {
	if item.Kind == domain.KindText {
		return 0, nil
	}
	if item.MediaURL == "" {
		return 0, fmt.Errorf("probing media: item %s has no media url", item.ID)
	}

	path := "/api/v1/media/meta?url=" + url.QueryEscape(item.MediaURL)
	data, err := s.client.Get(path)
	if err != nil {
		return 0, fmt.Errorf("probing media: %w", err)
	}

	var resp struct {
		DurationMs int  `json:"duration_ms"`
		Ready      bool `json:"ready"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("parsing media meta: %w", err)
	}
	if !resp.Ready {
		return 0, fmt.Errorf("probing media: asset %s not decodable", item.ID)
	}
	return resp.DurationMs, nil
}
