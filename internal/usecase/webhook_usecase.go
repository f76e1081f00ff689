package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase/interfaces"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/mock_webhook_usecase.go -package=mocks

var (
	ErrInvalidWebhookSignature   = errors.New("invalid webhook signature")
	ErrWebhookStoreNotConfigured = errors.New("processed event store not configured")
)

// IWebhookUseCase is the "Webhook Receiver" core.
//
// Flow per notification:
//   - verify the signature when a verifier is configured and a signature was sent
//   - skip events whose "{id}-{action}" key is already in the processed-event store
//   - dispatch to the handler registered for the action (unknown actions are ignored)
//   - mark the key only after the handler succeeded
//
// A failed handler leaves the key unmarked so the processor's redelivery of a
// non-2xx answer is processed again.
type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, n entities.WebhookNotification) (entities.WebhookResult, error)
}

// WebhookEventHandler reacts to one webhook action.
type WebhookEventHandler interface {
	Handle(ctx context.Context, event entities.WebhookEvent) error
}

type WebhookEventHandlerFunc func(ctx context.Context, event entities.WebhookEvent) error

func (f WebhookEventHandlerFunc) Handle(ctx context.Context, event entities.WebhookEvent) error {
	return f(ctx, event)
}

type WebhookUseCase struct {
	store    interfaces.IProcessedEventStore
	verifier interfaces.ISignatureVerifier

	mu       sync.RWMutex
	handlers map[entities.WebhookAction][]WebhookEventHandler

	inflight singleflight.Group
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase builds the receiver. verifier may be nil when no webhook
// secret is configured.
func NewWebhookUseCase(store interfaces.IProcessedEventStore, verifier interfaces.ISignatureVerifier) *WebhookUseCase {
	return &WebhookUseCase{
		store:    store,
		verifier: verifier,
		handlers: map[entities.WebhookAction][]WebhookEventHandler{},
	}
}

// Register adds a handler for action. Handlers of the same action run in
// registration order and the first error stops the chain.
func (u *WebhookUseCase) Register(action entities.WebhookAction, h WebhookEventHandler) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.handlers[action] = append(u.handlers[action], h)
}

func (u *WebhookUseCase) HandleNotification(ctx context.Context, n entities.WebhookNotification) (entities.WebhookResult, error) {
	ev := n.Event
	if ev.Data.ID == "" && strings.TrimSpace(n.QueryDataID) != "" {
		ev.Data.ID = entities.FlexibleID(strings.TrimSpace(n.QueryDataID))
	}
	log.Printf("[webhook][usecase] received event_id=%s action=%s type=%s data_id=%s", ev.ID, ev.Action, ev.Type, ev.Data.ID)

	if u.verifier != nil && strings.TrimSpace(n.Signature) != "" {
		if err := u.verifier.Verify(n); err != nil {
			log.Printf("[webhook][usecase] invalid signature event_id=%s request_id=%s err=%v", ev.ID, n.RequestID, err)
			return entities.WebhookResult{}, fmt.Errorf("%w: %w", ErrInvalidWebhookSignature, err)
		}
	}
	if u.store == nil {
		return entities.WebhookResult{}, ErrWebhookStoreNotConfigured
	}

	key := ev.DedupKey()
	leader := false
	// Followers share the leader's result, so the leader's caller going away
	// must not cancel the work.
	workCtx := context.WithoutCancel(ctx)
	v, err, _ := u.inflight.Do(key, func() (any, error) {
		leader = true
		return u.process(workCtx, key, ev)
	})
	if err != nil {
		return entities.WebhookResult{}, err
	}

	res := v.(entities.WebhookResult)
	if !leader {
		// Collapsed into a concurrent delivery of the same key that succeeded.
		log.Printf("[webhook][usecase] concurrent duplicate key=%s", key)
		res.Duplicate = true
	}
	return res, nil
}

func (u *WebhookUseCase) process(ctx context.Context, key string, ev entities.WebhookEvent) (entities.WebhookResult, error) {
	seen, err := u.store.Seen(ctx, key)
	if err != nil {
		log.Printf("[webhook][usecase] store lookup failed key=%s err=%v", key, err)
		return entities.WebhookResult{}, err
	}
	if seen {
		log.Printf("[webhook][usecase] duplicate event ignored key=%s", key)
		return entities.WebhookResult{Key: key, Received: true, Duplicate: true}, nil
	}

	if err := u.dispatch(ctx, ev); err != nil {
		log.Printf("[webhook][usecase] dispatch failed key=%s err=%v", key, err)
		return entities.WebhookResult{}, err
	}

	if err := u.store.Mark(ctx, key); err != nil {
		log.Printf("[webhook][usecase] mark processed failed key=%s err=%v", key, err)
		return entities.WebhookResult{}, err
	}
	log.Printf("[webhook][usecase] processed key=%s", key)
	return entities.WebhookResult{Key: key, Received: true}, nil
}

func (u *WebhookUseCase) dispatch(ctx context.Context, ev entities.WebhookEvent) error {
	u.mu.RLock()
	handlers := u.handlers[ev.Action]
	u.mu.RUnlock()

	if len(handlers) == 0 {
		log.Printf("[webhook][usecase] unhandled action=%s event_id=%s", ev.Action, ev.ID)
		return nil
	}
	for _, h := range handlers {
		if err := h.Handle(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}
