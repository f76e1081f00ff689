package usecase

import (
	"context"
	"errors"
	"log"
	"nexuspay/internal/domain/entities"
)

type paymentStatusReader interface {
	GetPaymentStatus(ctx context.Context, paymentID string) (entities.Payment, error)
}

// PaymentSyncHandler re-fetches the authoritative payment named by a
// payment.* notification. The notification body itself is never trusted for
// payment state.
type PaymentSyncHandler struct {
	reader   paymentStatusReader
	onUpdate bool
}

// RegisterPaymentHandlers wires payment.created and payment.updated to the
// payment status reader.
func RegisterPaymentHandlers(u *WebhookUseCase, reader paymentStatusReader) {
	u.Register(entities.WebhookActionPaymentCreated, &PaymentSyncHandler{reader: reader})
	u.Register(entities.WebhookActionPaymentUpdated, &PaymentSyncHandler{reader: reader, onUpdate: true})
}

func (h *PaymentSyncHandler) Handle(ctx context.Context, event entities.WebhookEvent) error {
	paymentID := event.Data.ID.String()
	log.Printf("[webhook][payment] processing action=%s payment_id=%s", event.Action, paymentID)

	p, err := h.reader.GetPaymentStatus(ctx, paymentID)
	if err != nil {
		if acknowledgeFetchError(err) {
			log.Printf("[webhook][payment] failed to fetch payment details, acknowledging action=%s payment_id=%q err=%v", event.Action, paymentID, err)
			return nil
		}
		log.Printf("[webhook][payment] failed fetching payment payment_id=%s err=%v", paymentID, err)
		return err
	}

	if !h.onUpdate {
		log.Printf("[webhook][payment] payment details id=%d status=%s amount=%.2f currency=%s payment_method=%s",
			p.ID, p.Status, p.TransactionAmount, p.CurrencyID, p.PaymentMethodID)
		return nil
	}

	log.Printf("[webhook][payment] updated payment id=%d status=%s status_detail=%s", p.ID, p.Status, p.StatusDetail)
	switch p.Status {
	case entities.PaymentStatusApproved:
		log.Printf("[webhook][payment] payment approved id=%d", p.ID)
	case entities.PaymentStatusRejected:
		log.Printf("[webhook][payment] payment rejected id=%d", p.ID)
	case entities.PaymentStatusRefunded:
		log.Printf("[webhook][payment] payment refunded id=%d", p.ID)
	}
	return nil
}

// acknowledgeFetchError reports re-fetch failures a redelivery cannot fix:
// bad ids, missing payments, a gateway without credentials and processor 4xx
// answers. Transport errors and processor 5xx are left for redelivery.
func acknowledgeFetchError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidPaymentID),
		errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrPaymentGatewayNotConfigured),
		errors.Is(err, ErrPaymentGatewayUnauthorized),
		errors.Is(err, ErrPaymentGatewayBadRequest):
		return true
	}
	return isGatewayClientError(err)
}
