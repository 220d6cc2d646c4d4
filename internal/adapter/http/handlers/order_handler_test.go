package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace_payments/internal/adapter/http/handlers/mocks"
	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkout/stripe", h.CreateStripeCheckout)
	r.GET("/v1/orders/:id", h.GetOrderByID)
	return r
}

func TestOrderHandler_CreateStripeCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing total amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		r := newOrderRouter(NewOrderHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/stripe", bytes.NewBufferString(`{"currency":"usd"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		r := newOrderRouter(NewOrderHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/stripe", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("checkout unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateStripeCheckout(gomock.Any(), 25.5, "usd", gomock.Any()).
			Return(entities.CheckoutSession{}, usecase.ErrCheckoutNotConfigured)

		r := newOrderRouter(NewOrderHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/stripe", bytes.NewBufferString(`{"total_amount":25.5,"currency":"usd"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success with camelCase payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateStripeCheckout(gomock.Any(), 25.5, "usd", gomock.Any()).
			Return(entities.CheckoutSession{ID: "sess_123", URL: "https://stripe.test/pay"}, nil)

		r := newOrderRouter(NewOrderHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/stripe", bytes.NewBufferString(`{"totalAmount":25.5,"currency":"usd"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "sess_123" || body["url"] != "https://stripe.test/pay" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := newOrderRouter(NewOrderHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found with timeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID:            "ord-1",
			PaymentRef:    "sess_123",
			PaymentMethod: entities.PaymentMethodStripe,
			PaymentStatus: entities.PaymentStatusPaid,
			Timeline: []entities.TimelineEntry{
				{Status: entities.PaymentStatusPending, At: now, Via: entities.PaymentMethodStripe},
				{Status: entities.PaymentStatusPaid, At: now, Via: entities.PaymentMethodStripe, ProviderEvent: "checkout.session.completed"},
			},
		}, nil)

		r := newOrderRouter(NewOrderHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		timeline, _ := body["timeline"].([]any)
		if len(timeline) != 2 {
			t.Fatalf("expected 2 timeline entries, got %d", len(timeline))
		}
	})
}
