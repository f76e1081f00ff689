package repository

import (
	"context"
	"time"

	"nexuspay/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const processedEventKeyPrefix = "webhook:processed:"

type redisKV interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ProcessedEventRedisRepository shares processed webhook keys across
// instances. Retention is time based: each key expires after ttl.
type ProcessedEventRedisRepository struct {
	client redisKV
	ttl    time.Duration
}

var _ interfaces.IProcessedEventStore = (*ProcessedEventRedisRepository)(nil)

func NewProcessedEventRedisRepository(client redisKV, ttl time.Duration) *ProcessedEventRedisRepository {
	if ttl <= 0 {
		ttl = DefaultProcessedEventTTL
	}
	return &ProcessedEventRedisRepository{client: client, ttl: ttl}
}

func (r *ProcessedEventRedisRepository) Seen(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, processedEventKeyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProcessedEventRedisRepository) Mark(ctx context.Context, key string) error {
	return r.client.Set(ctx, processedEventKeyPrefix+key, "1", r.ttl).Err()
}
