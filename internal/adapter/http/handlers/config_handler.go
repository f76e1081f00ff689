package handlers

import (
	"net/http"
	"strings"

	response "nexuspay/internal/adapter/http/dto/response"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConfigHandler exposes what a storefront needs to start a checkout: the
// public key and the URLs the server will hand to the processor. No secret
// leaves the server through it.
type ConfigHandler struct {
	publicKey        string
	configured       bool
	appURL           string
	signatureEnabled bool
}

func NewConfigHandler(publicKey, appURL string, configured, signatureEnabled bool) *ConfigHandler {
	appURL = strings.TrimRight(strings.TrimSpace(appURL), "/")
	if appURL == "" {
		appURL = usecase.DefaultBaseURL
	}
	return &ConfigHandler{
		publicKey:        publicKey,
		configured:       configured,
		appURL:           appURL,
		signatureEnabled: signatureEnabled,
	}
}

// GetConfig godoc
// @Summary      Public checkout configuration
// @Tags         config
// @Produce      json
// @Success      200  {object}  response.Envelope{data=response.ConfigResponse}
// @Router       /v1/config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(response.ConfigResponse{
		PublicKey:       h.publicKey,
		Configured:      h.configured,
		NotificationURL: h.appURL + usecase.WebhookPath,
		BackURLs: entities.BackURLs{
			Success: h.appURL + "/success",
			Failure: h.appURL + "/failure",
			Pending: h.appURL + "/pending",
		},
		DefaultCurrency:  entities.DefaultCurrencyID,
		SignatureEnabled: h.signatureEnabled,
	}))
}

// Ping godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
