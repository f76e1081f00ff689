package routes

import (
	"nexuspay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/refunds", paymentHandler.RefundPayment)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", paymentHandler.DashboardStats)
	}
}
