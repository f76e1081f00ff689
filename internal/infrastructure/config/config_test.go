package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_PUBLIC_KEY", "APP_URL",
		"STATEMENT_DESCRIPTOR", "WEBHOOK_SECRET", "WEBHOOK_DEDUP_BACKEND",
		"WEBHOOK_DEDUP_TTL_HOURS", "WEBHOOK_DEDUP_CAPACITY", "REDIS_URL", "PROCESSED_EVENTS_TABLE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.AppURL != "http://localhost:3000" || cfg.StatementDescriptor != "NEXUSPAY" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DedupBackend != DedupBackendMemory || cfg.DedupTTL != 24*time.Hour || cfg.DedupMemoryCapacity != 1000 {
		t.Fatalf("unexpected dedup defaults: %+v", cfg)
	}
	if cfg.MercadoPagoConfigured() {
		t.Fatalf("no access token means not configured")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: 9000
  app_url: https://shop.example.com
mercadopago:
  access_token: TEST-file
  public_key: PUB-file
  webhook_secret: from-file
webhook:
  dedup_backend: redis
  dedup_ttl_hours: 48
  redis_url: redis://cache:6379/0
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-env")
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessToken != "TEST-env" || cfg.Port != 9100 {
		t.Fatalf("env must win over file: %+v", cfg)
	}
	if cfg.PublicKey != "PUB-file" || cfg.AppURL != "https://shop.example.com" || cfg.WebhookSecret != "from-file" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DedupBackend != DedupBackendRedis || cfg.DedupTTL != 48*time.Hour || cfg.RedisURL != "redis://cache:6379/0" {
		t.Fatalf("webhook section not applied: %+v", cfg)
	}
	if !cfg.MercadoPagoConfigured() {
		t.Fatalf("expected configured")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		_ = os.WriteFile(path, []byte("server: ["), 0o600)
		if _, err := Load(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("redis without url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WEBHOOK_DEDUP_BACKEND", "redis")
		if _, err := Load(""); err == nil {
			t.Fatalf("expected missing REDIS_URL error")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WEBHOOK_DEDUP_BACKEND", "memcached")
		if _, err := Load(""); err == nil {
			t.Fatalf("expected unknown backend error")
		}
	})

	t.Run("invalid int falls back", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "abc")
		cfg, err := Load("")
		if err != nil || cfg.Port != 8080 {
			t.Fatalf("expected fallback port, err=%v cfg=%+v", err, cfg)
		}
	})
}
