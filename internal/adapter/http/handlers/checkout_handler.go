package handlers

import (
	"log"
	"net/http"

	request "nexuspay/internal/adapter/http/dto/request"
	response "nexuspay/internal/adapter/http/dto/response"
	"nexuspay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout preference creation.
type CheckoutHandler struct {
	usecase usecase.IPreferenceUseCase
}

func NewCheckoutHandler(uc usecase.IPreferenceUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePreference godoc
// @Summary      Create a checkout preference
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePreferenceRequest  true  "Items and optional payer"
// @Success      201   {object}  response.Envelope{data=response.PreferenceResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /v1/checkout/preferences [post]
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	var payload request.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[preference][handler] invalid payload err=%v", err)
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}
	log.Printf("[preference][handler] create start items=%d", len(payload.Items))

	pref, err := h.usecase.CreateCheckoutPreference(c.Request.Context(), payload.ToItems(), payload.ToPayer(), payload.ExternalReference)
	if err != nil {
		log.Printf("[preference][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[preference][handler] create success preference_id=%s", pref.ID)

	c.JSON(http.StatusCreated, response.OK(response.FromPreference(pref)))
}
