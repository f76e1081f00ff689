package routes

import (
	"nexuspay/internal/adapter/http/handlers"
	"nexuspay/internal/usecase"

	"github.com/gin-gonic/gin"
)

// addWebhookRoutes mounts the receiver at the URL handed to the processor as
// notification_url. Every method reaches the handler so non-POST calls get a
// 405 in the API envelope.
func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.Any(usecase.WebhookPath, webhookHandler.Handle)
}
