package repo

import (
	"context"
	"time"
)

// TokenRepo is the server-side revocation list. Entries live only until the
// token they shadow would have expired anyway.
type TokenRepo interface {
	Revoke(ctx context.Context, jti string, exp time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
