package domain

import "time"

// ItemKind distinguishes the three story media types.
type ItemKind string

const (
	KindText  ItemKind = "text"
	KindImage ItemKind = "image"
	KindVideo ItemKind = "video"
)

// Item is a single ephemeral story unit. Items are created by the platform
// before the viewer ever sees them; the engine treats them as immutable and
// only ever removes them from an in-memory sequence on deletion.
type Item struct {
	ID          string
	OwnerID     string
	Kind        ItemKind
	MediaURL    string // Empty for text items
	TextContent string // Only set for text items
	Background  string // Background spec for text cards, e.g. "gradient:indigo"
	Filter      string // Optional filter spec applied by the media service
	Caption     string
	CreatedAt   time.Time
	ViewsCount  int
}

// UserSequence is one user's ordered run of active story items, oldest
// first. A sequence handed to the viewer must be non-empty.
type UserSequence struct {
	OwnerID      string
	OwnerDisplay string
	Items        []Item
}

// SequenceList orders per-user sequences for cross-user navigation.
// A single-user session (list of one) is valid.
type SequenceList []UserSequence

// ViewRecord is one entry in an item's viewer list.
type ViewRecord struct {
	ViewerID      string
	ViewerDisplay string
	ViewedAt      time.Time
}
