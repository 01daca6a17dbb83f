package app

import (
	"context"

	"github.com/ashmitb/unistory/domain"
)

// MediaService resolves playback metadata for image and video items.
// Text items never hit it.
type MediaService interface {
	// Probe blocks until the item's media is decodable and returns the
	// reported duration in milliseconds. Images report 0; the clock falls
	// back to the fixed budget for them.
	Probe(ctx context.Context, item domain.Item) (durationMs int, err error)
}
