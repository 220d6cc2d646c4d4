package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

// ICheckoutGateway abstracts the provider that hosts the checkout page
// (Stripe today). The returned session ID is stored as the order's
// payment_ref and echoed back by the provider's webhooks.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, totalAmount float64, currency string, items []entities.CheckoutItem) (entities.CheckoutSession, error)
}
