package routes

import (
	"context"
	"log"
	"strconv"

	_ "nexuspay/docs"
	"nexuspay/internal/adapter/http/handlers"
	"nexuspay/internal/infrastructure/config"
	"nexuspay/internal/infrastructure/payments"
	"nexuspay/internal/usecase"
	"nexuspay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var verifier interfaces.ISignatureVerifier
	if cfg.WebhookSecret != "" {
		verifier = payments.NewMercadoPagoSignatureVerifier(cfg.WebhookSecret)
	} else {
		log.Printf("WEBHOOK_SECRET not set, webhook signatures will not be verified")
	}

	store, err := newProcessedEventStore(ctx, cfg)
	if err != nil {
		return err
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway)
	preferenceUseCase := usecase.NewPreferenceUseCase(paymentGateway, cfg.AppURL, cfg.StatementDescriptor)
	webhookUseCase := usecase.NewWebhookUseCase(store, verifier)
	usecase.RegisterPaymentHandlers(webhookUseCase, paymentUseCase)

	registerRoutes(router, routeHandlers{
		checkout: handlers.NewCheckoutHandler(preferenceUseCase),
		payments: handlers.NewPaymentHandler(paymentUseCase),
		webhooks: handlers.NewWebhookHandler(webhookUseCase),
		config:   handlers.NewConfigHandler(cfg.PublicKey, cfg.AppURL, paymentGateway != nil, verifier != nil),
	})
	return nil
}

type routeHandlers struct {
	checkout *handlers.CheckoutHandler
	payments *handlers.PaymentHandler
	webhooks *handlers.WebhookHandler
	config   *handlers.ConfigHandler
}

func registerRoutes(r *gin.Engine, h routeHandlers) {
	addPingRoutes(&r.RouterGroup)
	addWebhookRoutes(&r.RouterGroup, h.webhooks)

	// Public API
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h.checkout, h.config)
	addPaymentRoutes(v1, h.payments)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
