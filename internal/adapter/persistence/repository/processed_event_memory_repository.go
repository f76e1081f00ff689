package repository

import (
	"context"
	"nexuspay/internal/usecase/interfaces"
	"sync"
)

const (
	DefaultProcessedEventCapacity = 1000
	DefaultProcessedEventEvict    = 500
)

// ProcessedEventMemoryRepository is a bounded, insertion-ordered set of
// processed webhook keys.
//
// Once the set grows past capacity the oldest evict keys (by insertion, not by
// access) are dropped. It is process-local: several instances behind a load
// balancer do not share it, use the Redis or DynamoDB repository for that.
type ProcessedEventMemoryRepository struct {
	mu       sync.Mutex
	capacity int
	evict    int
	order    []string
	index    map[string]struct{}
}

var _ interfaces.IProcessedEventStore = (*ProcessedEventMemoryRepository)(nil)

func NewProcessedEventMemoryRepository(capacity, evict int) *ProcessedEventMemoryRepository {
	if capacity <= 0 {
		capacity = DefaultProcessedEventCapacity
	}
	if evict <= 0 || evict > capacity {
		evict = capacity / 2
	}
	return &ProcessedEventMemoryRepository{
		capacity: capacity,
		evict:    evict,
		order:    make([]string, 0, capacity+1),
		index:    make(map[string]struct{}, capacity+1),
	}
}

func (r *ProcessedEventMemoryRepository) Seen(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.index[key]
	return ok, nil
}

// Mark is a no-op for keys already present; their insertion position is kept.
func (r *ProcessedEventMemoryRepository) Mark(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[key]; ok {
		return nil
	}
	r.index[key] = struct{}{}
	r.order = append(r.order, key)

	if len(r.order) > r.capacity {
		for _, k := range r.order[:r.evict] {
			delete(r.index, k)
		}
		kept := make([]string, len(r.order)-r.evict, r.capacity+1)
		copy(kept, r.order[r.evict:])
		r.order = kept
	}
	return nil
}

func (r *ProcessedEventMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}
