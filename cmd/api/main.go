package main

import (
	"log"
	"os"

	_ "nexuspay/docs"
	"nexuspay/internal/adapter/http/routes"
	"nexuspay/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           NexusPay API
// @version         1.0
// @description     Mercado Pago checkout, payment lookup, refunds and webhook receiver.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
