package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase/interfaces"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks

var (
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrInvalidPaymentStatus        = errors.New("invalid payment status")
	ErrInvalidRefundAmount         = errors.New("invalid refund amount")
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase reads processor-owned payments and initiates refunds.
//
// Nothing here mutates a payment locally: every operation is a single call to
// the processor, validated before the call is made.
type IPaymentUseCase interface {
	GetPaymentStatus(ctx context.Context, paymentID string) (entities.Payment, error)
	ListPayments(ctx context.Context, filter entities.PaymentSearchFilter) (entities.PaymentPage, error)
	ProcessRefund(ctx context.Context, paymentID string, amount *float64) (entities.Refund, error)
	DashboardStats(ctx context.Context, filter entities.PaymentSearchFilter) (entities.DashboardStats, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway}
}

func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if !isValidPaymentID(paymentID) {
		log.Printf("[payment][usecase] invalid payment_id=%q", paymentID)
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured payment_id=%s", paymentID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] get payment failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] get payment success payment_id=%s status=%s", paymentID, p.Status)
	return p, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, filter entities.PaymentSearchFilter) (entities.PaymentPage, error) {
	filter = filter.Normalized()
	filter.Status = strings.TrimSpace(filter.Status)
	filter.ExternalReference = strings.TrimSpace(filter.ExternalReference)
	if filter.Status != "" && !entities.PaymentStatus(filter.Status).IsValid() {
		return entities.PaymentPage{}, ErrInvalidPaymentStatus
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured (search)")
		return entities.PaymentPage{}, ErrPaymentGatewayNotConfigured
	}

	page, err := u.gateway.SearchPayments(ctx, filter)
	if err != nil {
		log.Printf("[payment][usecase] search failed status=%q external_reference=%q err=%v", filter.Status, filter.ExternalReference, err)
		return entities.PaymentPage{}, classifyGatewayError(err)
	}
	if page.Payments == nil {
		page.Payments = []entities.Payment{}
	}
	log.Printf("[payment][usecase] search success results=%d total=%d limit=%d offset=%d", len(page.Payments), page.Total, filter.Limit, filter.Offset)
	return page, nil
}

// ProcessRefund refunds the whole payment when amount is nil and a partial
// amount otherwise.
func (u *PaymentUseCase) ProcessRefund(ctx context.Context, paymentID string, amount *float64) (entities.Refund, error) {
	paymentID = strings.TrimSpace(paymentID)
	if !isValidPaymentID(paymentID) {
		log.Printf("[refund][usecase] invalid payment_id=%q", paymentID)
		return entities.Refund{}, ErrInvalidPaymentID
	}
	if amount != nil && *amount <= 0 {
		log.Printf("[refund][usecase] invalid amount payment_id=%s amount=%v", paymentID, *amount)
		return entities.Refund{}, ErrInvalidRefundAmount
	}
	if u.gateway == nil {
		log.Printf("[refund][usecase] gateway not configured payment_id=%s", paymentID)
		return entities.Refund{}, ErrPaymentGatewayNotConfigured
	}

	r, err := u.gateway.RefundPayment(ctx, paymentID, amount)
	if err != nil {
		log.Printf("[refund][usecase] refund failed payment_id=%s err=%v", paymentID, err)
		return entities.Refund{}, classifyGatewayError(err)
	}
	log.Printf("[refund][usecase] refund success payment_id=%s refund_id=%d amount=%.2f", paymentID, r.ID, r.Amount)
	return r, nil
}

// DashboardStats aggregates one search page. Money is summed with decimal
// arithmetic and rounded to cents.
func (u *PaymentUseCase) DashboardStats(ctx context.Context, filter entities.PaymentSearchFilter) (entities.DashboardStats, error) {
	page, err := u.ListPayments(ctx, filter)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	return computeDashboardStats(page.Payments), nil
}

func computeDashboardStats(payments []entities.Payment) entities.DashboardStats {
	stats := entities.DashboardStats{TotalTransactions: len(payments)}
	if len(payments) == 0 {
		return stats
	}

	revenue := decimal.Zero
	for _, p := range payments {
		if stats.CurrencyID == "" {
			stats.CurrencyID = p.CurrencyID
		}
		if p.Status != entities.PaymentStatusApproved {
			continue
		}
		stats.ApprovedTransactions++
		revenue = revenue.Add(decimal.NewFromFloat(p.TransactionAmount))
	}

	stats.TotalRevenue = revenue.Round(2).InexactFloat64()
	stats.SuccessRate = decimal.NewFromInt(int64(stats.ApprovedTransactions)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(stats.TotalTransactions))).
		Round(2).InexactFloat64()
	if stats.ApprovedTransactions > 0 {
		stats.AverageTicket = revenue.Div(decimal.NewFromInt(int64(stats.ApprovedTransactions))).Round(2).InexactFloat64()
	}
	return stats
}

// Mercado Pago payment ids are numeric.
func isValidPaymentID(id string) bool {
	if id == "" {
		return false
	}
	_, err := strconv.ParseInt(id, 10, 64)
	return err == nil
}

// classifyGatewayError keeps the processor error in the chain so its message
// can still be reported to the caller.
func classifyGatewayError(err error) error {
	switch {
	case isGatewayNotFound(err):
		return fmt.Errorf("%w: %w", ErrPaymentNotFound, err)
	case isGatewayUnauthorized(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"not_found\"") || strings.Contains(msg, "\"status\":404")
}

var gatewayClientStatus = regexp.MustCompile(`"status":\s*4\d\d\b`)

// isGatewayClientError matches any 4xx status the processor embedded in its
// error body.
func isGatewayClientError(err error) bool {
	if err == nil {
		return false
	}
	return gatewayClientStatus.MatchString(err.Error())
}
