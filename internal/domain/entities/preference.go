package entities

// DefaultCurrencyID is applied to items that arrive without a currency.
const DefaultCurrencyID = "ARS"

// AutoReturnApproved sends the buyer back to the success URL once the payment
// is approved.
const AutoReturnApproved = "approved"

// Item is a checkout line item. It is fully provided by the caller.
type Item struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PictureURL  string  `json:"picture_url,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
}

type Phone struct {
	AreaCode string `json:"area_code,omitempty"`
	Number   string `json:"number,omitempty"`
}

type Identification struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type Address struct {
	StreetName   string `json:"street_name,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// Payer is the buyer as given by the caller. It is forwarded to the processor
// unchanged apart from a trimmed email.
type Payer struct {
	Email          string          `json:"email"`
	Name           string          `json:"name,omitempty"`
	Surname        string          `json:"surname,omitempty"`
	Phone          *Phone          `json:"phone,omitempty"`
	Identification *Identification `json:"identification,omitempty"`
	Address        *Address        `json:"address,omitempty"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest is the body sent to the processor's preference endpoint.
//
// The JSON shape matches /checkout/preferences so it can be handed to the SDK
// request type without field-by-field mapping.
type PreferenceRequest struct {
	Items               []Item    `json:"items"`
	Payer               *Payer    `json:"payer,omitempty"`
	BackURLs            *BackURLs `json:"back_urls,omitempty"`
	AutoReturn          string    `json:"auto_return,omitempty"`
	ExternalReference   string    `json:"external_reference,omitempty"`
	NotificationURL     string    `json:"notification_url,omitempty"`
	StatementDescriptor string    `json:"statement_descriptor,omitempty"`
}

// Preference is the processor-assigned checkout session. Immutable once
// returned and never persisted.
type Preference struct {
	ID                string `json:"id"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point"`
	DateCreated       string `json:"date_created,omitempty"`
	CollectorID       int64  `json:"collector_id,omitempty"`
	ExternalReference string `json:"external_reference,omitempty"`
}
