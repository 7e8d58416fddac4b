// Copyright (c) 2026 StoreRatings. All rights reserved.

package rating

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iamMohdZiya/storeratings/internal/platform/constants"
)

// guardedFill writes the aggregate only if the store's epoch still matches
// the one the caller observed before computing. A missing epoch key reads
// as zero on both sides.
var guardedFill = redis.NewScript(`
local epoch = redis.call("GET", KEYS[1])
if epoch == false then
	epoch = "0"
end
if epoch ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// RedisAggregateCache implements AggregateCache on a Redis client.
//
// Keys follow the taxonomy in the constants package. Values are small JSON
// blobs; the TTL is a backstop only, correctness comes from Invalidate
// being called inside every submit and from the epoch-guarded fill.
type RedisAggregateCache struct {
	client *redis.Client
}

// NewRedisAggregateCache creates an aggregate cache on the given client.
func NewRedisAggregateCache(client *redis.Client) *RedisAggregateCache {
	return &RedisAggregateCache{client: client}
}

func aggregateKey(storeID int64) string {
	return constants.RedisPrefixAggregate + strconv.FormatInt(storeID, 10)
}

func epochKey(storeID int64) string {
	return constants.RedisPrefixAggregateEpoch + strconv.FormatInt(storeID, 10)
}

// Get returns the cached aggregate and true on a hit. On a miss it also
// returns the store's current epoch for the follow-up Set.
func (cache *RedisAggregateCache) Get(ctx context.Context, storeID int64) (Aggregate, int64, bool, error) {
	pipe := cache.client.Pipeline()
	valueCmd := pipe.Get(ctx, aggregateKey(storeID))
	epochCmd := pipe.Get(ctx, epochKey(storeID))

	// Exec reports redis.Nil for absent keys; each command is inspected
	// individually below.
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return Aggregate{}, 0, false, fmt.Errorf("redis_aggregate_cache_get_failed: %w", err)
	}

	epoch, err := epochCmd.Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return Aggregate{}, 0, false, fmt.Errorf("redis_aggregate_cache_epoch_failed: %w", err)
		}
		epoch = 0
	}

	payload, err := valueCmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Aggregate{}, epoch, false, nil
		}
		return Aggregate{}, 0, false, fmt.Errorf("redis_aggregate_cache_get_failed: %w", err)
	}

	var aggregate Aggregate
	if err := json.Unmarshal(payload, &aggregate); err != nil {
		// Treat a corrupt entry as a miss; the next fill overwrites it.
		return Aggregate{}, epoch, false, nil
	}

	return aggregate, epoch, true, nil
}

// Set stores the aggregate with the given backstop TTL. The fill is dropped
// without error when an invalidation has bumped the epoch since it was read.
func (cache *RedisAggregateCache) Set(ctx context.Context, storeID int64, aggregate Aggregate, epoch int64, ttl time.Duration) error {
	payload, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("redis_aggregate_cache_marshal_failed: %w", err)
	}

	keys := []string{epochKey(storeID), aggregateKey(storeID)}
	err = guardedFill.Run(ctx, cache.client, keys,
		strconv.FormatInt(epoch, 10),
		payload,
		ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("redis_aggregate_cache_set_failed: %w", err)
	}

	return nil
}

// Invalidate removes the cached aggregate for a store and bumps its epoch
// in one transaction, so no fill can land between the two steps.
func (cache *RedisAggregateCache) Invalidate(ctx context.Context, storeID int64) error {
	pipe := cache.client.TxPipeline()
	pipe.Incr(ctx, epochKey(storeID))
	pipe.Expire(ctx, epochKey(storeID), constants.AggregateEpochTTL)
	pipe.Del(ctx, aggregateKey(storeID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis_aggregate_cache_invalidate_failed: %w", err)
	}
	return nil
}
