package app

import "context"

// AccountService provides information about the authenticated user.
type AccountService interface {
	// CurrentAccountID returns the account ID of the session owner. The
	// viewer uses it to mark own rings and gate owner-only actions.
	CurrentAccountID(ctx context.Context) (string, error)
}
