package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultUsageKeyPrefix is the key namespace for usage counters in Redis.
const DefaultUsageKeyPrefix = "usage"

// usageKey builds the Redis key for one account's feature counter, e.g.
// "usage:6c1a...:members".
func usageKey(prefix string, accountID uuid.UUID, feature Feature) string {
	return fmt.Sprintf("%s:%s:%s", prefix, accountID, feature)
}

// NewRedisCounter returns a CounterFunc that reads the live usage counter
// for a feature from Redis. A missing key counts as zero usage; the counter
// itself is maintained by the surrounding application whenever a resource
// is created or removed.
func NewRedisCounter(client redis.UniversalClient, prefix string, feature Feature) CounterFunc {
	if prefix == "" {
		prefix = DefaultUsageKeyPrefix
	}

	return func(ctx context.Context, accountID uuid.UUID) (int64, error) {
		val, err := client.Get(ctx, usageKey(prefix, accountID, feature)).Int64()
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		if err != nil {
			return 0, errors.Join(ErrFailedToCountUsage, err)
		}
		if val < 0 {
			// Counters can transiently underflow on concurrent decrements.
			return 0, nil
		}
		return val, nil
	}
}

// RegisterRedisCounters registers a Redis-backed counter for every countable
// feature under the given key prefix.
func RegisterRedisCounters(registry CounterRegistry, client redis.UniversalClient, prefix string) {
	for _, feature := range Features() {
		if IsCountable(feature) {
			registry.Register(feature, NewRedisCounter(client, prefix, feature))
		}
	}
}
