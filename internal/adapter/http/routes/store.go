package routes

import (
	"context"
	"fmt"
	"log"
	"os"

	"nexuspay/internal/adapter/persistence/repository"
	"nexuspay/internal/infrastructure/config"
	"nexuspay/internal/infrastructure/database"
	"nexuspay/internal/usecase/interfaces"
)

// newProcessedEventStore picks the webhook dedup backend. The memory store is
// per process; redis and dynamodb are shared by every replica.
func newProcessedEventStore(ctx context.Context, cfg config.Config) (interfaces.IProcessedEventStore, error) {
	switch cfg.DedupBackend {
	case "", config.DedupBackendMemory:
		log.Printf("[webhook][dedup] backend=memory capacity=%d", cfg.DedupMemoryCapacity)
		return repository.NewProcessedEventMemoryRepository(cfg.DedupMemoryCapacity, cfg.DedupMemoryCapacity/2), nil

	case config.DedupBackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Printf("[webhook][dedup] backend=redis ttl=%s", cfg.DedupTTL)
		return repository.NewProcessedEventRedisRepository(client, cfg.DedupTTL), nil

	case config.DedupBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			if err := database.EnsureProcessedEventsTable(ctx, ddb, cfg.ProcessedEventTable); err != nil {
				return nil, fmt.Errorf("ensure processed events table: %w", err)
			}
		}
		log.Printf("[webhook][dedup] backend=dynamodb table=%s ttl=%s", cfg.ProcessedEventTable, cfg.DedupTTL)
		return repository.NewProcessedEventDynamoRepository(ddb, cfg.ProcessedEventTable, cfg.DedupTTL), nil

	default:
		return nil, fmt.Errorf("unknown dedup backend %q", cfg.DedupBackend)
	}
}
