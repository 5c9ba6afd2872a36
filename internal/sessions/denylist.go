package sessions

import (
	"context"
	"time"
)

// TokenDenylist records revoked JWTs until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	IsRevoked(ctx context.Context, token string) (bool, error)
}
