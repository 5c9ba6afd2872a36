package sessions

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisDenylist struct {
	client rueidis.Client
	prefix string
}

func NewRedisDenylist(client rueidis.Client, keyPrefix string) *RedisDenylist {
	return &RedisDenylist{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *RedisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Second
	}

	cmd := r.client.B().Set().Key(r.prefix + token).Value("1").
		Ex(ttl).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	cmd := r.client.B().Exists().Key(r.prefix + token).Build()
	n, err := r.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
