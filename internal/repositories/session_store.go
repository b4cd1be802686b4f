package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "session:revoked:"

// SessionStore keeps revoked token ids in redis until the token would have
// expired anyway, which is what makes logout stick for bearer tokens.
type SessionStore struct {
	Client *redis.Client
}

func (s SessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if ttl <= 0 {
		// already expired, nothing to deny
		return nil
	}
	return s.Client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (s SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := s.Client.Get(ctx, revokedKeyPrefix+jti).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
