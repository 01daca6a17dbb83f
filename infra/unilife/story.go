package unilife

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/ashmitb/unistory/domain"
)

// storyService implements app.StoryService using the Unilife API.
type storyService struct {
	client *Client
}

// NewStoryService creates a StoryService backed by the platform.
func NewStoryService(client *Client) *storyService {
	return &storyService{client: client}
}

// apiSequence is the subset of the stories feed entity we care about.
type apiSequence struct {
	Owner struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		Username    string `json:"username"`
	} `json:"owner"`
	Items []apiItem `json:"items"`
}

type apiItem struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	Kind       string `json:"kind"`
	MediaURL   string `json:"media_url"`
	Text       string `json:"text_content"`
	Background string `json:"background_spec"`
	Filter     string `json:"filter_spec"`
	Caption    string `json:"caption"`
	CreatedAt  string `json:"created_at"`
	ViewsCount int    `json:"views_count"`
}

type apiViewRecord struct {
	ViewerID      string `json:"viewer_id"`
	ViewerDisplay string `json:"viewer_display"`
	ViewedAt      string `json:"viewed_at"`
}

func (s *storyService) Sequences(_ context.Context) (domain.SequenceList, error) {
	data, err := s.client.Get("/api/v1/stories/feed")
	if err != nil {
		return nil, fmt.Errorf("fetching story feed: %w", err)
	}

	var raw []apiSequence
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing story feed: %w", err)
	}

	list := make(domain.SequenceList, 0, len(raw))
	for _, seq := range raw {
		if len(seq.Items) == 0 {
			// The platform occasionally races item expiry against the feed
			// listing; an empty ring never reaches the viewer.
			continue
		}
		display := seq.Owner.DisplayName
		if display == "" {
			display = seq.Owner.Username
		}
		items := make([]domain.Item, 0, len(seq.Items))
		for _, it := range seq.Items {
			createdAt, _ := time.Parse(time.RFC3339, it.CreatedAt)
			items = append(items, domain.Item{
				ID:          it.ID,
				OwnerID:     it.OwnerID,
				Kind:        parseKind(it.Kind),
				MediaURL:    it.MediaURL,
				TextContent: it.Text,
				Background:  it.Background,
				Filter:      it.Filter,
				Caption:     it.Caption,
				CreatedAt:   createdAt,
				ViewsCount:  it.ViewsCount,
			})
		}
		list = append(list, domain.UserSequence{
			OwnerID:      seq.Owner.ID,
			OwnerDisplay: display,
			Items:        items,
		})
	}

	return list, nil
}

func (s *storyService) RecordView(_ context.Context, itemID string) error {
	path := fmt.Sprintf("/api/v1/stories/%s/view", url.PathEscape(itemID))
	if _, err := s.client.Post(path, nil); err != nil {
		return fmt.Errorf("recording view: %w", err)
	}
	return nil
}

func (s *storyService) Viewers(_ context.Context, itemID string) ([]domain.ViewRecord, error) {
	path := fmt.Sprintf("/api/v1/stories/%s/viewers", url.PathEscape(itemID))
	data, err := s.client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetching viewers: %w", err)
	}

	var raw []apiViewRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing viewers: %w", err)
	}

	records := make([]domain.ViewRecord, 0, len(raw))
	for _, r := range raw {
		viewedAt, _ := time.Parse(time.RFC3339, r.ViewedAt)
		records = append(records, domain.ViewRecord{
			ViewerID:      r.ViewerID,
			ViewerDisplay: r.ViewerDisplay,
			ViewedAt:      viewedAt,
		})
	}
	return records, nil
}

func (s *storyService) Delete(_ context.Context, itemID string) error {
	path := fmt.Sprintf("/api/v1/stories/%s", url.PathEscape(itemID))
	if _, err := s.client.Delete(path); err != nil {
		return fmt.Errorf("deleting story: %w", err)
	}
	return nil
}

func parseKind(kind string) domain.ItemKind {
	switch kind {
	case "image":
		return domain.KindImage
	case "video":
		return domain.KindVideo
	default:
		return domain.KindText
	}
}
