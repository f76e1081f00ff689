package handlers

import (
	"errors"
	"net/http"

	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase"
	"nexuspay/pkg"
)

var (
	errInvalidRequestBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errInvalidQuery       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

// mapPaymentError translates use case and processor errors for the checkout
// and payment routes.
func mapPaymentError(err error) *pkg.AppError {
	var perr *entities.ProcessorError

	switch {
	case errors.Is(err, usecase.ErrEmptyItems):
		return pkg.NewDomainErrorSimple("INVALID_ITEMS", "At least one item is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItem):
		return pkg.NewDomainErrorSimple("INVALID_ITEMS", "Invalid item data: title, quantity, and unit_price are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPayer):
		return pkg.NewDomainErrorSimple("INVALID_PAYER", "Invalid payer: email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Payment ID is required and must be numeric", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "Invalid payment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRefundAmount):
		return pkg.NewDomainErrorSimple("INVALID_REFUND_AMOUNT", "Refund amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "MercadoPago not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainError("PAYMENT_NOT_FOUND", processorMessageOr(err, "Payment not found"), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", processorMessageOr(err, "Payment provider unauthorized"), err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", processorMessageOr(err, "Invalid request"), err, http.StatusBadRequest)
	case errors.As(err, &perr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", perr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Invalid signature", err, http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}

func processorMessageOr(err error, fallback string) string {
	var perr *entities.ProcessorError
	if errors.As(err, &perr) && perr.Message != "" {
		return perr.Message
	}
	return fallback
}
