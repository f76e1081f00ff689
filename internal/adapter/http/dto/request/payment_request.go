package request

import (
	"strings"

	"nexuspay/internal/domain/entities"
)

// RefundRequest is the optional body of POST /v1/payments/:payment_id/refunds.
// A missing amount asks the processor for a full refund.
type RefundRequest struct {
	Amount *float64 `json:"amount"`
}

// PaymentSearchQuery binds the query string of GET /v1/payments.
type PaymentSearchQuery struct {
	Status            string `form:"status"`
	ExternalReference string `form:"external_reference"`
	Limit             int    `form:"limit" binding:"omitempty,min=0,max=100"`
	Offset            int    `form:"offset" binding:"omitempty,min=0"`
}

func (q PaymentSearchQuery) ToFilter() entities.PaymentSearchFilter {
	return entities.PaymentSearchFilter{
		Status:            strings.ToLower(strings.TrimSpace(q.Status)),
		ExternalReference: strings.TrimSpace(q.ExternalReference),
		Limit:             q.Limit,
		Offset:            q.Offset,
	}.Normalized()
}
