package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"nexuspay/internal/usecase"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_MockGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("CONFIG_FILE", "")

	t.Run("payment get", func(t *testing.T) {
		out, err := run(t, "payment", "get", "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var p map[string]any
		if err := json.Unmarshal([]byte(out), &p); err != nil {
			t.Fatalf("decode %q: %v", out, err)
		}
		if p["id"] != float64(123) || p["status"] != "approved" {
			t.Fatalf("unexpected payment: %v", p)
		}
	})

	t.Run("payment get rejects non numeric id", func(t *testing.T) {
		if _, err := run(t, "payment", "get", "abc"); !errors.Is(err, usecase.ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("partial refund", func(t *testing.T) {
		out, err := run(t, "refund", "123", "--amount", "12.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var r map[string]any
		_ = json.Unmarshal([]byte(out), &r)
		if r["payment_id"] != float64(123) || r["amount"] != 12.5 {
			t.Fatalf("unexpected refund: %v", r)
		}
	})

	t.Run("full refund", func(t *testing.T) {
		out, err := run(t, "refund", "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var r map[string]any
		_ = json.Unmarshal([]byte(out), &r)
		if r["amount"] != float64(100) {
			t.Fatalf("unexpected refund: %v", r)
		}
	})

	t.Run("zero refund amount is rejected", func(t *testing.T) {
		if _, err := run(t, "refund", "123", "--amount", "0"); !errors.Is(err, usecase.ErrInvalidRefundAmount) {
			t.Fatalf("expected ErrInvalidRefundAmount, got %v", err)
		}
	})

	t.Run("preference create", func(t *testing.T) {
		out, err := run(t, "preference", "create", "--title", "Mouse", "--price", "10", "--external-reference", "order-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var p map[string]any
		_ = json.Unmarshal([]byte(out), &p)
		if !strings.HasPrefix(p["id"].(string), "mock-pref-") || p["external_reference"] != "order-7" {
			t.Fatalf("unexpected preference: %v", p)
		}
	})

	t.Run("preference create without title", func(t *testing.T) {
		if _, err := run(t, "preference", "create", "--price", "10"); !errors.Is(err, usecase.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("payment search", func(t *testing.T) {
		out, err := run(t, "payment", "search", "--status", "approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `"payments": []`) {
			t.Fatalf("unexpected output: %s", out)
		}
	})

	t.Run("payment search status is case insensitive", func(t *testing.T) {
		if _, err := run(t, "payment", "search", "--status", " APPROVED "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("payment search unknown status", func(t *testing.T) {
		if _, err := run(t, "payment", "search", "--status", "settled"); !errors.Is(err, usecase.ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("payment search stats", func(t *testing.T) {
		out, err := run(t, "payment", "search", "--stats")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `"total_transactions": 0`) {
			t.Fatalf("unexpected output: %s", out)
		}
	})
}

func TestCommands_NoGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("CONFIG_FILE", "")

	if _, err := run(t, "payment", "get", "123"); !errors.Is(err, usecase.ErrPaymentGatewayNotConfigured) {
		t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil || strings.TrimSpace(out) != Version {
		t.Fatalf("unexpected version output %q err=%v", out, err)
	}
}
