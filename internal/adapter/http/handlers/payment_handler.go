package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	request "nexuspay/internal/adapter/http/dto/request"
	response "nexuspay/internal/adapter/http/dto/response"
	"nexuspay/internal/usecase"

	"github.com/gin-gonic/gin"
)

const refundSuccessMessage = "Refund processed successfully"

// PaymentHandler handles payment lookup, search, refunds and dashboard stats.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Mercado Pago payment id"
// @Success      200         {object}  response.Envelope{data=response.PaymentResponse}
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] get start payment_id=%s", paymentID)

	p, err := h.usecase.GetPaymentStatus(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPayment(p)))
}

// ListPayments godoc
// @Summary      Search payments
// @Tags         payments
// @Produce      json
// @Param        status              query     string  false  "Payment status"
// @Param        external_reference  query     string  false  "External reference"
// @Param        limit               query     int     false  "Page size (default 10)"
// @Param        offset              query     int     false  "Offset (default 0)"
// @Success      200                 {object}  response.Envelope{data=response.PaymentPageResponse}
// @Failure      400                 {object}  pkg.HTTPError
// @Router       /v1/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var q request.PaymentSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Printf("[payment][handler] invalid search query err=%v", err)
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.ListPayments(c.Request.Context(), q.ToFilter())
	if err != nil {
		log.Printf("[payment][handler] search failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPaymentPage(page)))
}

// RefundPayment godoc
// @Summary      Refund a payment
// @Description  Full refund when the body or its amount is omitted.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                 true   "Mercado Pago payment id"
// @Param        body        body      request.RefundRequest  false  "Partial amount"
// @Success      200         {object}  response.Envelope{data=response.RefundResponse}
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /v1/payments/{payment_id}/refunds [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	payload, err := readRefundRequest(c)
	if err != nil {
		log.Printf("[refund][handler] invalid payload payment_id=%s err=%v", paymentID, err)
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}
	log.Printf("[refund][handler] refund start payment_id=%s partial=%t", paymentID, payload.Amount != nil)

	r, err := h.usecase.ProcessRefund(c.Request.Context(), paymentID, payload.Amount)
	if err != nil {
		log.Printf("[refund][handler] refund failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OKWithMessage(response.FromRefund(r), refundSuccessMessage))
}

// DashboardStats godoc
// @Summary      Dashboard statistics
// @Tags         payments
// @Produce      json
// @Param        status  query     string  false  "Payment status"
// @Param        limit   query     int     false  "Payments to aggregate (default 10)"
// @Success      200     {object}  response.Envelope{data=entities.DashboardStats}
// @Failure      400     {object}  pkg.HTTPError
// @Router       /v1/dashboard/stats [get]
func (h *PaymentHandler) DashboardStats(c *gin.Context) {
	var q request.PaymentSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	stats, err := h.usecase.DashboardStats(c.Request.Context(), q.ToFilter())
	if err != nil {
		log.Printf("[dashboard][handler] stats failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(stats))
}

// readRefundRequest accepts an empty body as a full refund.
func readRefundRequest(c *gin.Context) (request.RefundRequest, error) {
	var payload request.RefundRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	err = json.Unmarshal(raw, &payload)
	return payload, err
}
