package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DedupBackendMemory   = "memory"
	DedupBackendRedis    = "redis"
	DedupBackendDynamoDB = "dynamodb"
)

// Config is the resolved runtime configuration of the API.
type Config struct {
	Port int

	AccessToken         string
	PublicKey           string
	AppURL              string
	StatementDescriptor string
	WebhookSecret       string

	DedupBackend        string
	DedupTTL            time.Duration
	DedupMemoryCapacity int
	RedisURL            string
	ProcessedEventTable string
}

// configFile mirrors the optional YAML file pointed at by CONFIG_FILE.
type configFile struct {
	Server struct {
		Port   int    `yaml:"port"`
		AppURL string `yaml:"app_url"`
	} `yaml:"server"`
	MercadoPago struct {
		AccessToken         string `yaml:"access_token"`
		PublicKey           string `yaml:"public_key"`
		StatementDescriptor string `yaml:"statement_descriptor"`
		WebhookSecret       string `yaml:"webhook_secret"`
	} `yaml:"mercadopago"`
	Webhook struct {
		DedupBackend        string `yaml:"dedup_backend"`
		DedupTTLHours       int    `yaml:"dedup_ttl_hours"`
		DedupMemoryCapacity int    `yaml:"dedup_memory_capacity"`
		RedisURL            string `yaml:"redis_url"`
		ProcessedEventTable string `yaml:"processed_events_table"`
	} `yaml:"webhook"`
}

// Load resolves configuration as defaults, then the YAML file at path (if it
// exists), then environment variables.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:                8080,
		AppURL:              "http://localhost:3000",
		StatementDescriptor: "NEXUSPAY",
		DedupBackend:        DedupBackendMemory,
		DedupTTL:            24 * time.Hour,
		DedupMemoryCapacity: 1000,
		ProcessedEventTable: "processed_events",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := applyFile(&cfg, raw); err != nil {
				return Config{}, err
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.AccessToken = envOrDefault("MERCADOPAGO_ACCESS_TOKEN", cfg.AccessToken)
	cfg.PublicKey = envOrDefault("MERCADOPAGO_PUBLIC_KEY", cfg.PublicKey)
	cfg.AppURL = envOrDefault("APP_URL", cfg.AppURL)
	cfg.StatementDescriptor = envOrDefault("STATEMENT_DESCRIPTOR", cfg.StatementDescriptor)
	cfg.WebhookSecret = envOrDefault("WEBHOOK_SECRET", cfg.WebhookSecret)
	cfg.DedupBackend = strings.ToLower(strings.TrimSpace(envOrDefault("WEBHOOK_DEDUP_BACKEND", cfg.DedupBackend)))
	cfg.DedupTTL = time.Duration(envInt("WEBHOOK_DEDUP_TTL_HOURS", int(cfg.DedupTTL.Hours()))) * time.Hour
	cfg.DedupMemoryCapacity = envInt("WEBHOOK_DEDUP_CAPACITY", cfg.DedupMemoryCapacity)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.ProcessedEventTable = envOrDefault("PROCESSED_EVENTS_TABLE", cfg.ProcessedEventTable)

	switch cfg.DedupBackend {
	case DedupBackendMemory, DedupBackendDynamoDB:
	case DedupBackendRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("missing REDIS_URL for %s dedup backend", DedupBackendRedis)
		}
	default:
		return Config{}, fmt.Errorf("unknown WEBHOOK_DEDUP_BACKEND %q", cfg.DedupBackend)
	}
	if cfg.Port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// MercadoPagoConfigured reports whether real processor calls can be made.
func (c Config) MercadoPagoConfigured() bool {
	return strings.TrimSpace(c.AccessToken) != ""
}

func applyFile(cfg *Config, raw []byte) error {
	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if f.Server.Port > 0 {
		cfg.Port = f.Server.Port
	}
	if f.Server.AppURL != "" {
		cfg.AppURL = f.Server.AppURL
	}
	if f.MercadoPago.AccessToken != "" {
		cfg.AccessToken = f.MercadoPago.AccessToken
	}
	if f.MercadoPago.PublicKey != "" {
		cfg.PublicKey = f.MercadoPago.PublicKey
	}
	if f.MercadoPago.StatementDescriptor != "" {
		cfg.StatementDescriptor = f.MercadoPago.StatementDescriptor
	}
	if f.MercadoPago.WebhookSecret != "" {
		cfg.WebhookSecret = f.MercadoPago.WebhookSecret
	}
	if f.Webhook.DedupBackend != "" {
		cfg.DedupBackend = f.Webhook.DedupBackend
	}
	if f.Webhook.DedupTTLHours > 0 {
		cfg.DedupTTL = time.Duration(f.Webhook.DedupTTLHours) * time.Hour
	}
	if f.Webhook.DedupMemoryCapacity > 0 {
		cfg.DedupMemoryCapacity = f.Webhook.DedupMemoryCapacity
	}
	if f.Webhook.RedisURL != "" {
		cfg.RedisURL = f.Webhook.RedisURL
	}
	if f.Webhook.ProcessedEventTable != "" {
		cfg.ProcessedEventTable = f.Webhook.ProcessedEventTable
	}
	return nil
}

func envOrDefault(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
