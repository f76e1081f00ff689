package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
)

func TestProcessedEventMemoryRepository_SeenAndMark(t *testing.T) {
	ctx := context.Background()
	r := NewProcessedEventMemoryRepository(0, 0)

	seen, err := r.Seen(ctx, "1-payment.updated")
	if err != nil || seen {
		t.Fatalf("expected unseen key, seen=%v err=%v", seen, err)
	}
	if err := r.Mark(ctx, "1-payment.updated"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Mark(ctx, "1-payment.updated"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen, _ = r.Seen(ctx, "1-payment.updated")
	if !seen {
		t.Fatalf("expected key to be seen")
	}
	if r.Len() != 1 {
		t.Fatalf("re-marking must not grow the set, len=%d", r.Len())
	}
}

func TestProcessedEventMemoryRepository_EvictsOldestHalf(t *testing.T) {
	ctx := context.Background()
	r := NewProcessedEventMemoryRepository(DefaultProcessedEventCapacity, DefaultProcessedEventEvict)

	for i := 1; i <= 1000; i++ {
		_ = r.Mark(ctx, fmt.Sprintf("evt-%d", i))
	}
	if r.Len() != 1000 {
		t.Fatalf("expected 1000 keys before overflow, got %d", r.Len())
	}

	_ = r.Mark(ctx, "evt-1001")
	if r.Len() > 1000 {
		t.Fatalf("size must stay <= 1000, got %d", r.Len())
	}
	if r.Len() != 501 {
		t.Fatalf("expected 501 keys after evicting 500, got %d", r.Len())
	}

	for _, k := range []string{"evt-1", "evt-250", "evt-500"} {
		if seen, _ := r.Seen(ctx, k); seen {
			t.Fatalf("%s should have been evicted", k)
		}
	}
	for _, k := range []string{"evt-501", "evt-1000", "evt-1001"} {
		if seen, _ := r.Seen(ctx, k); !seen {
			t.Fatalf("%s should still be retained", k)
		}
	}

	// Eviction follows insertion order, not access order.
	_, _ = r.Seen(ctx, "evt-501")
	for i := 1002; i <= 1500; i++ {
		_ = r.Mark(ctx, fmt.Sprintf("evt-%d", i))
	}
	if r.Len() != 1000 {
		t.Fatalf("expected 1000 keys, got %d", r.Len())
	}
	_ = r.Mark(ctx, "evt-1501")
	if seen, _ := r.Seen(ctx, "evt-501"); seen {
		t.Fatalf("evt-501 is among the oldest and must be evicted despite being read")
	}
	if seen, _ := r.Seen(ctx, "evt-1001"); !seen {
		t.Fatalf("evt-1001 should be retained")
	}
}

func TestProcessedEventMemoryRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	r := NewProcessedEventMemoryRepository(100, 50)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("g%d-%d", g, i)
				_ = r.Mark(ctx, key)
				_, _ = r.Seen(ctx, key)
			}
		}(g)
	}
	wg.Wait()

	if r.Len() > 100 {
		t.Fatalf("capacity exceeded: %d", r.Len())
	}
}

type fakeRedis struct {
	keys      map[string]time.Duration
	existsErr error
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	if f.existsErr != nil {
		return redis.NewIntResult(0, f.existsErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, _ interface{}, expiration time.Duration) *redis.StatusCmd {
	f.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestProcessedEventRedisRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("mark then seen", func(t *testing.T) {
		client := &fakeRedis{keys: map[string]time.Duration{}}
		r := NewProcessedEventRedisRepository(client, time.Hour)

		if seen, err := r.Seen(ctx, "1-payment.created"); err != nil || seen {
			t.Fatalf("expected unseen, seen=%v err=%v", seen, err)
		}
		if err := r.Mark(ctx, "1-payment.created"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ttl, ok := client.keys["webhook:processed:1-payment.created"]
		if !ok || ttl != time.Hour {
			t.Fatalf("expected prefixed key with ttl, got %v", client.keys)
		}
		if seen, _ := r.Seen(ctx, "1-payment.created"); !seen {
			t.Fatalf("expected seen")
		}
	})

	t.Run("default ttl", func(t *testing.T) {
		client := &fakeRedis{keys: map[string]time.Duration{}}
		r := NewProcessedEventRedisRepository(client, 0)
		_ = r.Mark(ctx, "k")
		if client.keys["webhook:processed:k"] != DefaultProcessedEventTTL {
			t.Fatalf("expected default ttl")
		}
	})

	t.Run("exists error", func(t *testing.T) {
		client := &fakeRedis{keys: map[string]time.Duration{}, existsErr: errors.New("redis down")}
		r := NewProcessedEventRedisRepository(client, time.Hour)
		if _, err := r.Seen(ctx, "k"); err == nil || err.Error() != "redis down" {
			t.Fatalf("expected redis down, got %v", err)
		}
	})
}

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	putErr error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := in.Key["event_key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := in.Item["event_key"].(*types.AttributeValueMemberS).Value
	if existing, ok := f.items[key]; ok {
		var it processedEventItem
		_ = attributevalue.UnmarshalMap(existing, &it)
		now, _ := strconv.ParseInt(in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN).Value, 10, 64)
		if it.ExpiresAt >= now {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
		}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestProcessedEventDynamoRepository(t *testing.T) {
	ctx := context.Background()
	t.Setenv("PROCESSED_EVENTS_TABLE", "events-test")

	t.Run("mark then seen", func(t *testing.T) {
		ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
		r := NewProcessedEventDynamoRepository(ddb, "", time.Hour)
		if r.tableName != "events-test" {
			t.Fatalf("expected table from env, got %s", r.tableName)
		}

		if seen, err := r.Seen(ctx, "1-payment.updated"); err != nil || seen {
			t.Fatalf("expected unseen, seen=%v err=%v", seen, err)
		}
		if err := r.Mark(ctx, "1-payment.updated"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen, err := r.Seen(ctx, "1-payment.updated"); err != nil || !seen {
			t.Fatalf("expected seen, seen=%v err=%v", seen, err)
		}
	})

	t.Run("explicit table name", func(t *testing.T) {
		r := NewProcessedEventDynamoRepository(&fakeDynamo{}, "custom", 0)
		if r.tableName != "custom" || r.ttl != DefaultProcessedEventTTL {
			t.Fatalf("unexpected repository: table=%s ttl=%v", r.tableName, r.ttl)
		}
	})

	t.Run("concurrent mark by another instance is not an error", func(t *testing.T) {
		ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
		r := NewProcessedEventDynamoRepository(ddb, "", time.Hour)
		_ = r.Mark(ctx, "k")
		if err := r.Mark(ctx, "k"); err != nil {
			t.Fatalf("conditional failure must be swallowed, got %v", err)
		}
	})

	t.Run("expired item is unseen and can be re-marked", func(t *testing.T) {
		ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
		r := NewProcessedEventDynamoRepository(ddb, "", time.Hour)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		r.now = func() time.Time { return base }
		_ = r.Mark(ctx, "k")

		r.now = func() time.Time { return base.Add(2 * time.Hour) }
		if seen, _ := r.Seen(ctx, "k"); seen {
			t.Fatalf("expired key must be reported unseen")
		}
		if err := r.Mark(ctx, "k"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen, _ := r.Seen(ctx, "k"); !seen {
			t.Fatalf("re-marked key must be seen")
		}
	})

	t.Run("put error", func(t *testing.T) {
		ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, putErr: errors.New("throttled")}
		r := NewProcessedEventDynamoRepository(ddb, "", time.Hour)
		if err := r.Mark(ctx, "k"); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}
