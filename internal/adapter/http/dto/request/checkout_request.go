package request

import (
	"strconv"
	"strings"

	"nexuspay/internal/domain/entities"
)

type ItemRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PictureURL  string  `json:"picture_url"`
	CategoryID  string  `json:"category_id"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

type PhoneRequest struct {
	AreaCode string `json:"area_code"`
	Number   string `json:"number"`
}

type IdentificationRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type AddressRequest struct {
	StreetName   string `json:"street_name"`
	StreetNumber int    `json:"street_number"`
	ZipCode      string `json:"zip_code"`
}

type PayerRequest struct {
	Email          string                 `json:"email"`
	Name           string                 `json:"name"`
	Surname        string                 `json:"surname"`
	Phone          *PhoneRequest          `json:"phone"`
	Identification *IdentificationRequest `json:"identification"`
	Address        *AddressRequest        `json:"address"`
}

// CreatePreferenceRequest is the body of POST /v1/checkout/preferences.
//
// Item rules (non-empty list, title, quantity and price) are enforced by the
// use case so the caller gets the same messages whatever the transport.
type CreatePreferenceRequest struct {
	Items             []ItemRequest `json:"items"`
	Payer             *PayerRequest `json:"payer"`
	ExternalReference string        `json:"external_reference"`
}

func (r CreatePreferenceRequest) ToItems() []entities.Item {
	items := make([]entities.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.Item{
			ID:          strings.TrimSpace(it.ID),
			Title:       strings.TrimSpace(it.Title),
			Description: it.Description,
			PictureURL:  it.PictureURL,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			CurrencyID:  strings.ToUpper(strings.TrimSpace(it.CurrencyID)),
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

func (r CreatePreferenceRequest) ToPayer() *entities.Payer {
	if r.Payer == nil {
		return nil
	}
	p := &entities.Payer{
		Email:   strings.TrimSpace(r.Payer.Email),
		Name:    r.Payer.Name,
		Surname: r.Payer.Surname,
	}
	if r.Payer.Phone != nil {
		p.Phone = &entities.Phone{AreaCode: r.Payer.Phone.AreaCode, Number: r.Payer.Phone.Number}
	}
	if r.Payer.Identification != nil {
		p.Identification = &entities.Identification{Type: r.Payer.Identification.Type, Number: r.Payer.Identification.Number}
	}
	if r.Payer.Address != nil {
		p.Address = &entities.Address{
			StreetName:   r.Payer.Address.StreetName,
			StreetNumber: streetNumber(r.Payer.Address.StreetNumber),
			ZipCode:      r.Payer.Address.ZipCode,
		}
	}
	return p
}

// streetNumber is sent to the processor as text; zero means not given.
func streetNumber(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
