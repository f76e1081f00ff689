package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexuspay/internal/adapter/http/handlers/mocks"
	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(uc usecase.IPaymentUseCase) *gin.Engine {
	h := NewPaymentHandler(uc)
	r := gin.New()
	r.GET("/v1/payments", h.ListPayments)
	r.GET("/v1/payments/:payment_id", h.GetPayment)
	r.POST("/v1/payments/:payment_id/refunds", h.RefundPayment)
	r.GET("/v1/dashboard/stats", h.DashboardStats)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "invalid id", err: usecase.ErrInvalidPaymentID, wantStatus: http.StatusBadRequest, wantError: "Payment ID is required and must be numeric"},
		{name: "not found", err: usecase.ErrPaymentNotFound, wantStatus: http.StatusNotFound, wantError: "Payment not found"},
		{name: "not configured", err: usecase.ErrPaymentGatewayNotConfigured, wantStatus: http.StatusServiceUnavailable, wantError: "MercadoPago not configured"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantError: "An internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			uc.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(entities.Payment{}, tt.err)

			w := httptest.NewRecorder()
			newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tt.wantError {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().GetPaymentStatus(gomock.Any(), "123").
			Return(entities.Payment{ID: 123, Status: entities.PaymentStatusApproved, TransactionAmount: 99.9}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["id"] != float64(123) || data["status"] != "approved" || data["transaction_amount"] != 99.9 {
			t.Fatalf("unexpected data: %v", data)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments?limit=abc", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("limit above maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments?limit=1000", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		want := entities.PaymentSearchFilter{Status: "approved", ExternalReference: "order-1", Limit: 5, Offset: 10}
		uc.EXPECT().ListPayments(gomock.Any(), want).
			Return(entities.PaymentPage{Payments: []entities.Payment{{ID: 1}, {ID: 2}}, Total: 12}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments?status=APPROVED&external_reference=order-1&limit=5&offset=10", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if len(data["payments"].([]any)) != 2 || data["total"] != float64(12) {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ListPayments(gomock.Any(), entities.PaymentSearchFilter{Limit: entities.DefaultPaymentSearchLimit}).
			Return(entities.PaymentPage{}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if payments, ok := data["payments"].([]any); !ok || len(payments) != 0 {
			t.Fatalf("expected empty list, got %v", data["payments"])
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ListPayments(gomock.Any(), gomock.Any()).Return(entities.PaymentPage{}, usecase.ErrInvalidPaymentStatus)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments?status=paid", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_RefundPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is a full refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessRefund(gomock.Any(), "123", gomock.Nil()).
			Return(entities.Refund{ID: 555, PaymentID: 123, Amount: 100, Status: "approved"}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["message"] != "Refund processed successfully" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		if data := body["data"].(map[string]any); data["refund_id"] != "555" {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("partial amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessRefund(gomock.Any(), "123", gomock.Any()).
			DoAndReturn(func(_ any, _ string, amount *float64) (entities.Refund, error) {
				if amount == nil || *amount != 25.5 {
					t.Fatalf("expected amount 25.5, got %v", amount)
				}
				return entities.Refund{ID: 1, PaymentID: 123, Amount: 25.5}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", bytes.NewBufferString(`{"amount":25.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", bytes.NewBufferString(`{"amount":`)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ProcessRefund(gomock.Any(), "123", gomock.Any()).Return(entities.Refund{}, usecase.ErrInvalidRefundAmount)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", bytes.NewBufferString(`{"amount":0}`)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("processor rejection keeps its message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		perr := &entities.ProcessorError{Operation: "refund_payment", Message: "Payment already refunded", Err: errors.New("400")}
		uc.EXPECT().ProcessRefund(gomock.Any(), "123", gomock.Any()).
			Return(entities.Refund{}, errors.Join(usecase.ErrPaymentGatewayBadRequest, perr))

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Payment already refunded" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_DashboardStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().DashboardStats(gomock.Any(), entities.PaymentSearchFilter{Limit: 50}).
			Return(entities.DashboardStats{TotalRevenue: 150.5, TotalTransactions: 3, ApprovedTransactions: 2, SuccessRate: 66.67, AverageTicket: 75.25}, nil)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats?limit=50", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeBody(t, w)["data"].(map[string]any)
		if data["total_revenue"] != 150.5 || data["success_rate"] != 66.67 {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().DashboardStats(gomock.Any(), gomock.Any()).Return(entities.DashboardStats{}, usecase.ErrPaymentGatewayNotConfigured)

		w := httptest.NewRecorder()
		newPaymentRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
