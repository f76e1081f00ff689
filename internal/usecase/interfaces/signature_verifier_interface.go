package interfaces

import "nexuspay/internal/domain/entities"

//go:generate mockgen -source=signature_verifier_interface.go -destination=mocks/mock_signature_verifier_interface.go -package=mock_interfaces

// ISignatureVerifier checks the x-signature header of a webhook notification.
type ISignatureVerifier interface {
	Verify(n entities.WebhookNotification) error
}
