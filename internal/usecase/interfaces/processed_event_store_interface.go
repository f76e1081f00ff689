package interfaces

import "context"

//go:generate mockgen -source=processed_event_store_interface.go -destination=mocks/mock_processed_event_store_interface.go -package=mock_interfaces

// IProcessedEventStore remembers which webhook events were already handled.
//
// Keys are "{event.id}-{event.action}". Retention is bounded by the backend
// (size for the in-memory store, TTL for Redis/DynamoDB); a key that fell out
// of retention is reported as not seen.
type IProcessedEventStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}
