package usecase

import (
	"context"
	"errors"
	"log"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=preference_usecase.go -destination=../adapter/http/handlers/mocks/mock_preference_usecase.go -package=mocks

const (
	DefaultBaseURL             = "http://localhost:3000"
	DefaultStatementDescriptor = "NEXUSPAY"
	WebhookPath                = "/api/webhooks/mercadopago"
)

var (
	ErrEmptyItems   = errors.New("at least one item is required")
	ErrInvalidItem  = errors.New("invalid item data: title, quantity, and unit_price are required")
	ErrInvalidPayer = errors.New("invalid payer: email is required")
)

// IPreferenceUseCase creates checkout preferences ("Preference Creator").
//
// Items are validated before the processor is contacted; a rejected cart never
// produces an outbound call.
type IPreferenceUseCase interface {
	CreateCheckoutPreference(ctx context.Context, items []entities.Item, payer *entities.Payer, externalReference string) (entities.Preference, error)
}

type PreferenceUseCase struct {
	gateway             interfaces.IPaymentGateway
	baseURL             string
	statementDescriptor string
	newReference        func() string
}

var _ IPreferenceUseCase = (*PreferenceUseCase)(nil)

func NewPreferenceUseCase(gateway interfaces.IPaymentGateway, baseURL, statementDescriptor string) *PreferenceUseCase {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(statementDescriptor) == "" {
		statementDescriptor = DefaultStatementDescriptor
	}
	return &PreferenceUseCase{
		gateway:             gateway,
		baseURL:             baseURL,
		statementDescriptor: statementDescriptor,
		newReference:        uuid.NewString,
	}
}

func (u *PreferenceUseCase) CreateCheckoutPreference(ctx context.Context, items []entities.Item, payer *entities.Payer, externalReference string) (entities.Preference, error) {
	log.Printf("[preference][usecase] create start items=%d has_payer=%t", len(items), payer != nil)
	if err := validateItems(items); err != nil {
		log.Printf("[preference][usecase] validation failed err=%v", err)
		return entities.Preference{}, err
	}
	if payer != nil && strings.TrimSpace(payer.Email) == "" {
		log.Printf("[preference][usecase] validation failed err=%v", ErrInvalidPayer)
		return entities.Preference{}, ErrInvalidPayer
	}
	if u.gateway == nil {
		log.Printf("[preference][usecase] gateway not configured")
		return entities.Preference{}, ErrPaymentGatewayNotConfigured
	}

	req := u.BuildPreferenceRequest(items, payer, externalReference)
	log.Printf("[preference][usecase] calling payment gateway external_reference=%s notification_url=%s", req.ExternalReference, req.NotificationURL)

	pref, err := u.gateway.CreatePreference(ctx, req)
	if err != nil {
		log.Printf("[preference][usecase] payment gateway failed external_reference=%s err=%v", req.ExternalReference, err)
		return entities.Preference{}, classifyGatewayError(err)
	}
	if pref.ExternalReference == "" {
		pref.ExternalReference = req.ExternalReference
	}
	log.Printf("[preference][usecase] create success preference_id=%s external_reference=%s", pref.ID, pref.ExternalReference)
	return pref, nil
}

// BuildPreferenceRequest fills the fixed-shape parts of a preference: default
// currency, callback URLs derived from the base URL and the statement
// descriptor. Items must already be valid.
func (u *PreferenceUseCase) BuildPreferenceRequest(items []entities.Item, payer *entities.Payer, externalReference string) entities.PreferenceRequest {
	reqItems := make([]entities.Item, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.CurrencyID) == "" {
			it.CurrencyID = entities.DefaultCurrencyID
		}
		reqItems[i] = it
	}

	externalReference = strings.TrimSpace(externalReference)
	if externalReference == "" {
		externalReference = u.newReference()
	}

	return entities.PreferenceRequest{
		Items: reqItems,
		Payer: preferencePayer(payer),
		BackURLs: &entities.BackURLs{
			Success: u.baseURL + "/success",
			Failure: u.baseURL + "/failure",
			Pending: u.baseURL + "/pending",
		},
		AutoReturn:          entities.AutoReturnApproved,
		ExternalReference:   externalReference,
		NotificationURL:     u.baseURL + WebhookPath,
		StatementDescriptor: u.statementDescriptor,
	}
}

// preferencePayer forwards the payer as given, with a trimmed email. The
// optional contact fields are copied so the request never aliases the caller.
func preferencePayer(p *entities.Payer) *entities.Payer {
	if p == nil {
		return nil
	}
	out := *p
	out.Email = strings.TrimSpace(p.Email)
	if p.Phone != nil {
		phone := *p.Phone
		out.Phone = &phone
	}
	if p.Identification != nil {
		id := *p.Identification
		out.Identification = &id
	}
	if p.Address != nil {
		addr := *p.Address
		out.Address = &addr
	}
	return &out
}

func validateItems(items []entities.Item) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.Title) == "" || it.Quantity < 1 || it.UnitPrice <= 0 {
			return ErrInvalidItem
		}
	}
	return nil
}
