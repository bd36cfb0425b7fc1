package sessions

import (
	"context"
	"errors"
)

// Identity is the authenticated actor a session resolves to. Everything in
// the core is scoped by UserID; IsGuest only changes completion archival.
type Identity struct {
	UserID  uint
	IsGuest bool
}

// Store keeps opaque session tokens and the identities behind them.
type Store interface {
	Create(ctx context.Context, identity Identity) (string, error)

	Get(ctx context.Context, token string) (Identity, error)

	Delete(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
