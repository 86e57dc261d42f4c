package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// Store tracks revoked token IDs in Redis. Logout writes the token's jti
// here with a TTL matching the token's remaining lifetime; the auth
// middleware rejects any token whose jti is present.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a session store backed by the given Redis client
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Revoke denylists a token ID until its natural expiry
func (s *Store) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to track.
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token ID has been denylisted
func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
