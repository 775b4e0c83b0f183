package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepo is the redis-backed revocation list. Keys are token JTIs and
// expire when the token itself would have, so the list never grows past the
// set of live tokens.
type TokenRepo struct {
	client *redis.Client
}

func NewTokenRepo(client *redis.Client) *TokenRepo {
	return &TokenRepo{client: client}
}

func (r *TokenRepo) Revoke(ctx context.Context, jti string, exp time.Time) error {
	return r.client.Set(ctx, key(jti), 1, safeTTL(exp)).Err()
}

func (r *TokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		// Fail closed: an unreachable list counts as revoked.
		return true, err
	}
	return n > 0, nil
}

func key(jti string) string { return "revoked:" + jti }

func safeTTL(exp time.Time) time.Duration {
	ttl := time.Until(exp)
	if ttl <= 0 {
		// minimal TTL so the key still disappears
		return time.Minute
	}
	return ttl
}
