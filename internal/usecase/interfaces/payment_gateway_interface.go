package interfaces

import (
	"context"
	"nexuspay/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts the payment processor (Mercado Pago).
//
// Every method is exactly one outbound call. Implementations return
// *entities.ProcessorError when the processor answers with a failure.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (entities.Payment, error)
	SearchPayments(ctx context.Context, filter entities.PaymentSearchFilter) (entities.PaymentPage, error)
	// RefundPayment refunds the full payment when amount is nil.
	RefundPayment(ctx context.Context, paymentID string, amount *float64) (entities.Refund, error)
}
