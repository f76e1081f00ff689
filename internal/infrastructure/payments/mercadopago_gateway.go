package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	opCreatePreference = "create_preference"
	opGetPayment       = "get_payment"
	opSearchPayments   = "search_payments"
	opRefundPayment    = "refund_payment"
)

var fallbackMessages = map[string]string{
	opCreatePreference: "Failed to create preference",
	opGetPayment:       "Failed to get payment",
	opSearchPayments:   "Failed to search payments",
	opRefundPayment:    "Failed to process refund",
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentReader interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

type refundCreator interface {
	Create(ctx context.Context, paymentID int) (*refund.Response, error)
	CreatePartialRefund(ctx context.Context, paymentID int, amount float64) (*refund.Response, error)
}

// MercadoPagoGateway talks to Mercado Pago through the official SDK.
//
// Our entities carry the processor's JSON field names, so requests and
// responses are converted with a JSON round trip instead of field mapping.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentReader
	refunds     refundCreator
	mockMode    bool
	mockSeq     atomic.Int64
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.Preference, error) {
	if g != nil && g.mockMode {
		return g.mockPreference(req), nil
	}
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Preference{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create preference start items=%d external_reference=%s", len(req.Items), req.ExternalReference)

	var sdkReq preference.Request
	if err := convert(req, &sdkReq); err != nil {
		log.Printf("[payment][gateway] preference request conversion failed err=%v", err)
		return entities.Preference{}, err
	}

	resp, err := g.preferences.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create preference failed err=%v", err)
		return entities.Preference{}, newProcessorError(opCreatePreference, err)
	}

	var pref entities.Preference
	if err := convert(resp, &pref); err != nil {
		log.Printf("[payment][gateway] preference response conversion failed err=%v", err)
		return entities.Preference{}, err
	}
	log.Printf("[payment][gateway] create preference success preference_id=%s", pref.ID)
	return pref, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}
	if g != nil && g.mockMode {
		return mockPayment(int64(id)), nil
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Payment{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get payment failed payment_id=%d err=%v", id, err)
		return entities.Payment{}, newProcessorError(opGetPayment, err)
	}

	var p entities.Payment
	if err := convert(resp, &p); err != nil {
		log.Printf("[payment][gateway] payment response conversion failed err=%v", err)
		return entities.Payment{}, err
	}
	return p, nil
}

func (g *MercadoPagoGateway) SearchPayments(ctx context.Context, filter entities.PaymentSearchFilter) (entities.PaymentPage, error) {
	filter = filter.Normalized()
	if g != nil && g.mockMode {
		return entities.PaymentPage{Payments: []entities.Payment{}}, nil
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentPage{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		Filters: filter.QueryParams(),
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk search failed err=%v", err)
		return entities.PaymentPage{}, newProcessorError(opSearchPayments, err)
	}

	page := entities.PaymentPage{Payments: make([]entities.Payment, 0, len(resp.Results))}
	if err := convert(resp.Results, &page.Payments); err != nil {
		log.Printf("[payment][gateway] search response conversion failed err=%v", err)
		return entities.PaymentPage{}, err
	}
	page.Total = resp.Paging.Total
	return page, nil
}

func (g *MercadoPagoGateway) RefundPayment(ctx context.Context, paymentID string, amount *float64) (entities.Refund, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.Refund{}, fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}
	if g != nil && g.mockMode {
		return g.mockRefund(int64(id), amount), nil
	}
	if g == nil || g.refunds == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Refund{}, ErrMercadoPagoGatewayNotConfigured
	}

	var resp *refund.Response
	if amount == nil {
		log.Printf("[payment][gateway] full refund start payment_id=%d", id)
		resp, err = g.refunds.Create(ctx, id)
	} else {
		log.Printf("[payment][gateway] partial refund start payment_id=%d amount=%.2f", id, *amount)
		resp, err = g.refunds.CreatePartialRefund(ctx, id, *amount)
	}
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed payment_id=%d err=%v", id, err)
		return entities.Refund{}, newProcessorError(opRefundPayment, err)
	}

	var r entities.Refund
	if err := convert(resp, &r); err != nil {
		log.Printf("[payment][gateway] refund response conversion failed err=%v", err)
		return entities.Refund{}, err
	}
	return r, nil
}

func convert(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, to)
}

// newProcessorError keeps the processor's "message" when the SDK error embeds
// the JSON error body.
func newProcessorError(op string, err error) *entities.ProcessorError {
	msg := processorMessage(err.Error())
	if msg == "" {
		msg = fallbackMessages[op]
	}
	return &entities.ProcessorError{Operation: op, Message: msg, Err: err}
}

func processorMessage(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}

func (g *MercadoPagoGateway) mockPreference(req entities.PreferenceRequest) entities.Preference {
	id := fmt.Sprintf("mock-pref-%d", g.mockSeq.Add(1))
	log.Printf("[payment][gateway] mock create preference preference_id=%s items=%d", id, len(req.Items))
	return entities.Preference{
		ID:                id,
		InitPoint:         "https://www.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
		SandboxInitPoint:  "https://sandbox.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
		DateCreated:       time.Now().UTC().Format(time.RFC3339Nano),
		ExternalReference: req.ExternalReference,
	}
}

func mockPayment(id int64) entities.Payment {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	log.Printf("[payment][gateway] mock get payment payment_id=%d", id)
	return entities.Payment{
		ID:                id,
		DateCreated:       now,
		DateApproved:      now,
		PaymentMethodID:   "account_money",
		PaymentTypeID:     "account_money",
		Status:            entities.PaymentStatusApproved,
		StatusDetail:      "accredited",
		CurrencyID:        entities.DefaultCurrencyID,
		TransactionAmount: 100,
	}
}

func (g *MercadoPagoGateway) mockRefund(paymentID int64, amount *float64) entities.Refund {
	r := entities.Refund{ID: g.mockSeq.Add(1), PaymentID: paymentID, Amount: 100, Status: "approved"}
	if amount != nil {
		r.Amount = *amount
	}
	log.Printf("[payment][gateway] mock refund payment_id=%d refund_id=%d amount=%.2f", paymentID, r.ID, r.Amount)
	return r
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
