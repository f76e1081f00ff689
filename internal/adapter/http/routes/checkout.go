package routes

import (
	"nexuspay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathConfig   = "/config"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, configHandler *handlers.ConfigHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/preferences", checkoutHandler.CreatePreference)
	}

	rg.GET(PathConfig, configHandler.GetConfig)
}
