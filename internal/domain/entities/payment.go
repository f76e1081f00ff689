package entities

// PaymentStatus is the Mercado Pago payment status.
//
// The processor owns the payment lifecycle. This service only reads payments,
// so the enumeration mirrors the documented processor values one-to-one.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusApproved    PaymentStatus = "approved"
	PaymentStatusAuthorized  PaymentStatus = "authorized"
	PaymentStatusInProcess   PaymentStatus = "in_process"
	PaymentStatusInMediation PaymentStatus = "in_mediation"
	PaymentStatusRejected    PaymentStatus = "rejected"
	PaymentStatusCancelled   PaymentStatus = "cancelled"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusChargedBack PaymentStatus = "charged_back"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending:     "Pendiente",
	PaymentStatusApproved:    "Aprobado",
	PaymentStatusAuthorized:  "Autorizado",
	PaymentStatusInProcess:   "En Proceso",
	PaymentStatusInMediation: "En Mediación",
	PaymentStatusRejected:    "Rechazado",
	PaymentStatusCancelled:   "Cancelado",
	PaymentStatusRefunded:    "Reembolsado",
	PaymentStatusChargedBack: "Contracargo",
}

func (s PaymentStatus) IsValid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

// Label returns the display label shown in the dashboard. Unknown statuses are
// returned verbatim.
func (s PaymentStatus) Label() string {
	if l, ok := paymentStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// PaymentPayer is the payer snapshot the processor keeps on a payment.
type PaymentPayer struct {
	Email          string          `json:"email,omitempty"`
	FirstName      string          `json:"first_name,omitempty"`
	LastName       string          `json:"last_name,omitempty"`
	Identification *Identification `json:"identification,omitempty"`
}

// Payment is the processor-owned payment record.
//
// Dates are kept as the processor's RFC3339 strings; the service never does
// arithmetic on them.
type Payment struct {
	ID                        int64         `json:"id"`
	DateCreated               string        `json:"date_created,omitempty"`
	DateApproved              string        `json:"date_approved,omitempty"`
	DateLastUpdated           string        `json:"date_last_updated,omitempty"`
	MoneyReleaseDate          string        `json:"money_release_date,omitempty"`
	OperationType             string        `json:"operation_type,omitempty"`
	PaymentMethodID           string        `json:"payment_method_id,omitempty"`
	PaymentTypeID             string        `json:"payment_type_id,omitempty"`
	Status                    PaymentStatus `json:"status"`
	StatusDetail              string        `json:"status_detail,omitempty"`
	CurrencyID                string        `json:"currency_id,omitempty"`
	Description               string        `json:"description,omitempty"`
	CollectorID               int64         `json:"collector_id,omitempty"`
	Payer                     PaymentPayer  `json:"payer"`
	TransactionAmount         float64       `json:"transaction_amount"`
	TransactionAmountRefunded float64       `json:"transaction_amount_refunded"`
	ExternalReference         string        `json:"external_reference,omitempty"`
	StatementDescriptor       string        `json:"statement_descriptor,omitempty"`
}

const DefaultPaymentSearchLimit = 10

// PaymentSearchFilter selects payments on the processor search endpoint.
// Empty fields are left out of the outbound query.
type PaymentSearchFilter struct {
	Status            string
	ExternalReference string
	Limit             int
	Offset            int
}

// Normalized applies the search defaults (limit 10, offset 0).
func (f PaymentSearchFilter) Normalized() PaymentSearchFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultPaymentSearchLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// QueryParams returns only the filters that are set.
func (f PaymentSearchFilter) QueryParams() map[string]string {
	params := map[string]string{}
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.ExternalReference != "" {
		params["external_reference"] = f.ExternalReference
	}
	return params
}

type PaymentPage struct {
	Payments []Payment `json:"payments"`
	Total    int       `json:"total"`
}

// Refund is the processor's answer to a full or partial refund.
type Refund struct {
	ID        int64   `json:"id"`
	PaymentID int64   `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status,omitempty"`
}
