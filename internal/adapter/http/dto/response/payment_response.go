package response

import (
	"strconv"

	"nexuspay/internal/domain/entities"
)

type PreferenceResponse struct {
	ID                string `json:"id"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point"`
	ExternalReference string `json:"external_reference,omitempty"`
	DateCreated       string `json:"date_created,omitempty"`
}

func FromPreference(p entities.Preference) PreferenceResponse {
	return PreferenceResponse{
		ID:                p.ID,
		InitPoint:         p.InitPoint,
		SandboxInitPoint:  p.SandboxInitPoint,
		ExternalReference: p.ExternalReference,
		DateCreated:       p.DateCreated,
	}
}

type PaymentResponse struct {
	entities.Payment
	StatusLabel string `json:"status_label"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{Payment: p, StatusLabel: p.Status.Label()}
}

type PaymentPageResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

func FromPaymentPage(page entities.PaymentPage) PaymentPageResponse {
	out := PaymentPageResponse{Payments: make([]PaymentResponse, 0, len(page.Payments)), Total: page.Total}
	for _, p := range page.Payments {
		out.Payments = append(out.Payments, FromPayment(p))
	}
	return out
}

type RefundResponse struct {
	RefundID  string  `json:"refund_id"`
	PaymentID int64   `json:"payment_id,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Status    string  `json:"status,omitempty"`
}

func FromRefund(r entities.Refund) RefundResponse {
	return RefundResponse{
		RefundID:  strconv.FormatInt(r.ID, 10),
		PaymentID: r.PaymentID,
		Amount:    r.Amount,
		Status:    r.Status,
	}
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}

type ConfigResponse struct {
	PublicKey        string            `json:"public_key"`
	Configured       bool              `json:"configured"`
	NotificationURL  string            `json:"notification_url"`
	BackURLs         entities.BackURLs `json:"back_urls"`
	DefaultCurrency  string            `json:"default_currency"`
	SignatureEnabled bool              `json:"signature_enabled"`
}
