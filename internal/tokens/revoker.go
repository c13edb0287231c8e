package tokens

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const keyPrefix = "revoked_jti:"

// Revoker is the logout backend: revoked token ids live in redis until the
// token would have expired anyway. Lookups fail open — if redis is down the
// token is accepted and a warning is logged, so auth never depends on redis
// being up.
type Revoker struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewRevoker(rdb *redis.Client, log zerolog.Logger) *Revoker {
	return &Revoker{rdb: rdb, log: log}
}

func (r *Revoker) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (r *Revoker) IsRevoked(ctx context.Context, jti string) bool {
	n, err := r.rdb.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		r.log.Warn().Err(err).Msg("token revocation lookup failed, accepting token")
		return false
	}
	return n > 0
}
