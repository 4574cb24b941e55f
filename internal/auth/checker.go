package auth

import (
	"context"
	"errors"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

var ErrNotLoggedIn = errors.New("not logged in")

// Checker resolves a session token to the opaque user ID it belongs to.
// Returns ErrNotLoggedIn for unknown or expired tokens.
type Checker interface {
	UserID(ctx context.Context, token string) (string, error)
}
