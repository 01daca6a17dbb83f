package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyReply indicates the user submitted an empty reply.
	ErrEmptyReply = errors.New("reply cannot be empty")

	// ErrEmptySequence indicates a caller supplied a user sequence with no
	// items. The viewer refuses to render an empty session.
	ErrEmptySequence = errors.New("user sequence has no items")

	// ErrNotOwner indicates an owner-only action (delete, viewer list) was
	// attempted on someone else's item.
	ErrNotOwner = errors.New("item belongs to another user")
)
