package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCheckoutAmount = errors.New("invalid checkout amount")
	ErrCheckoutNotConfigured = errors.New("checkout gateway not configured")
)

const defaultCheckoutCurrency = "usd"

// IOrderUseCase exposes the order-facing operations of this service: seeding
// a pending order at checkout time and reading an order with its timeline.

type IOrderUseCase interface {
	CreateStripeCheckout(ctx context.Context, totalAmount float64, currency string, items []entities.CheckoutItem) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.ICheckoutGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.ICheckoutGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, gateway: gateway}
}

// CreateStripeCheckout creates a Stripe Checkout Session and persists the
// matching pending order. The session ID becomes the order's payment_ref, so
// the later checkout.session.completed webhook can locate it.
func (u *OrderUseCase) CreateStripeCheckout(ctx context.Context, totalAmount float64, currency string, items []entities.CheckoutItem) (entities.CheckoutSession, error) {
	if totalAmount <= 0 {
		return entities.CheckoutSession{}, ErrInvalidCheckoutAmount
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrCheckoutNotConfigured
	}
	if u.repo == nil {
		return entities.CheckoutSession{}, errors.New("order repository not configured")
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCheckoutCurrency
	}

	log.Printf("[checkout][usecase] create start amount=%.2f currency=%s items=%d", totalAmount, currency, len(items))
	session, err := u.gateway.CreateCheckoutSession(ctx, totalAmount, currency, items)
	if err != nil {
		log.Printf("[checkout][usecase] gateway failed err=%v", err)
		return entities.CheckoutSession{}, err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:            uuid.NewString(),
		PaymentRef:    session.ID,
		PaymentMethod: entities.PaymentMethodStripe,
		PaymentStatus: entities.PaymentStatusPending,
		Amount:        totalAmount,
		Currency:      currency,
		Timeline: []entities.TimelineEntry{
			{Status: entities.PaymentStatusPending, At: now, Via: entities.PaymentMethodStripe},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := u.repo.Create(ctx, order); err != nil {
		log.Printf("[checkout][usecase] order create failed session_id=%s err=%v", session.ID, err)
		return entities.CheckoutSession{}, err
	}

	log.Printf("[checkout][usecase] create success order_id=%s session_id=%s", order.ID, session.ID)
	return session, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
