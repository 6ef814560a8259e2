// Package revokedtokens remembers access tokens that were logged out
// before they expired.
package revokedtokens

import (
	"context"
	"time"
)

type Repository interface {
	// Revoke blocks the token id until expiresAt.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
