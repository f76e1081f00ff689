package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	response "nexuspay/internal/adapter/http/dto/response"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase"
	"nexuspay/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerSignature = "x-signature"
	headerRequestID = "x-request-id"
	queryDataID     = "data.id"

	duplicateEventMessage = "Event already processed"
)

var (
	errMethodNotAllowed = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
	errInvalidWebhook   = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
)

// WebhookHandler receives Mercado Pago notifications. The raw body is kept
// for signature verification before anything else reads it.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Handle godoc
// @Summary      Mercado Pago webhook receiver
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string  false  "ts=<unix>,v1=<hex hmac>"
// @Param        x-request-id  header    string  false  "Delivery id"
// @Param        data.id       query     string  false  "Resource id"
// @Success      200           {object}  response.Envelope{data=response.WebhookAckResponse}
// @Failure      401           {object}  pkg.HTTPError
// @Failure      405           {object}  pkg.HTTPError
// @Failure      500           {object}  pkg.HTTPError
// @Router       /api/webhooks/mercadopago [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(errMethodNotAllowed.HTTPStatus, errMethodNotAllowed.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed err=%v", err)
		c.JSON(errInvalidWebhook.HTTPStatus, errInvalidWebhook.ToHTTPError())
		return
	}

	var event entities.WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		c.JSON(errInvalidWebhook.HTTPStatus, errInvalidWebhook.ToHTTPError())
		return
	}

	n := entities.WebhookNotification{
		Event:       event,
		RawBody:     raw,
		Signature:   c.GetHeader(headerSignature),
		RequestID:   c.GetHeader(headerRequestID),
		QueryDataID: c.Query(queryDataID),
	}

	result, err := h.usecase.HandleNotification(c.Request.Context(), n)
	if err != nil {
		log.Printf("[webhook][handler] failed event_id=%s action=%s err=%v", event.ID, event.Action, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ack := response.WebhookAckResponse{Received: true}
	if result.Duplicate {
		log.Printf("[webhook][handler] duplicate key=%s", result.Key)
		c.JSON(http.StatusOK, response.OKWithMessage(ack, duplicateEventMessage))
		return
	}
	c.JSON(http.StatusOK, response.OK(ack))
}
