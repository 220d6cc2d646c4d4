package usecase

import (
	"context"
	"errors"
	"testing"

	"marketplace_payments/internal/domain/entities"
	mock_interfaces "marketplace_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_CreateStripeCheckout(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.CreateStripeCheckout(context.Background(), 0, "usd", nil)
		if !errors.Is(err, ErrInvalidCheckoutAmount) {
			t.Fatalf("expected ErrInvalidCheckoutAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)

		uc := NewOrderUseCase(repo, nil)
		_, err := uc.CreateStripeCheckout(context.Background(), 49.99, "usd", nil)
		if !errors.Is(err, ErrCheckoutNotConfigured) {
			t.Fatalf("expected ErrCheckoutNotConfigured, got %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), 49.99, "usd", gomock.Any()).
			Return(entities.CheckoutSession{}, errors.New("stripe down"))

		uc := NewOrderUseCase(repo, gateway)
		_, err := uc.CreateStripeCheckout(context.Background(), 49.99, "usd", nil)
		if err == nil || err.Error() != "stripe down" {
			t.Fatalf("expected stripe down error, got %v", err)
		}
	})

	t.Run("success seeds pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), 49.99, "usd", gomock.Any()).
			Return(entities.CheckoutSession{ID: "sess_123", URL: "https://stripe.test/pay"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatal("expected generated order id")
				}
				if o.PaymentRef != "sess_123" {
					t.Fatalf("expected payment_ref sess_123, got %s", o.PaymentRef)
				}
				if o.PaymentMethod != entities.PaymentMethodStripe {
					t.Fatalf("expected stripe method, got %s", o.PaymentMethod)
				}
				if o.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending status, got %s", o.PaymentStatus)
				}
				if len(o.Timeline) != 1 || o.Timeline[0].Status != entities.PaymentStatusPending {
					t.Fatalf("expected initial pending timeline entry, got %+v", o.Timeline)
				}
				return o, nil
			})

		uc := NewOrderUseCase(repo, gateway)
		session, err := uc.CreateStripeCheckout(context.Background(), 49.99, "USD", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.ID != "sess_123" || session.URL != "https://stripe.test/pay" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})

	t.Run("defaults currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), 10.0, "usd", gomock.Any()).
			Return(entities.CheckoutSession{ID: "sess_9"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		uc := NewOrderUseCase(repo, gateway)
		if _, err := uc.CreateStripeCheckout(context.Background(), 10.0, "", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), 10.0, "usd", gomock.Any()).
			Return(entities.CheckoutSession{ID: "sess_9"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("put failed"))

		uc := NewOrderUseCase(repo, gateway)
		_, err := uc.CreateStripeCheckout(context.Background(), 10.0, "usd", nil)
		if err == nil || err.Error() != "put failed" {
			t.Fatalf("expected put failed error, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		uc := NewOrderUseCase(repo, nil)
		_, err := uc.GetByID(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		uc := NewOrderUseCase(repo, nil)
		order, err := uc.GetByID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}
