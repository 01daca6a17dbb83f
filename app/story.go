package app

import (
	"context"

	"github.com/ashmitb/unistory/domain"
)

// StoryService is the read-only story catalog plus the side effects the
// viewer emits. The platform owns storage; the viewer only consumes.
type StoryService interface {
	// Sequences returns the viewing session's ordered per-user sequences,
	// the session owner's own ring first when present.
	Sequences(ctx context.Context) (domain.SequenceList, error)

	// RecordView registers that the session owner saw an item. Best-effort
	// telemetry; callers must not block playback on it.
	RecordView(ctx context.Context, itemID string) error

	// Viewers returns who has seen one of the session owner's own items.
	Viewers(ctx context.Context, itemID string) ([]domain.ViewRecord, error)

	// Delete removes one of the session owner's own items.
	Delete(ctx context.Context, itemID string) error
}
