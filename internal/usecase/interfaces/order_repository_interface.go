package interfaces

import (
	"context"
	"marketplace_payments/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// AppendTransition must be a single atomic update: set payment_status and
// updated_at, append the timeline entry (and the meta blob when non-empty).
// Concurrent webhooks for the same order may interleave status writes, but
// appends must never lose each other.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	FindByPaymentRef(ctx context.Context, paymentRef string, method entities.PaymentMethod) (entities.Order, error)
	AppendTransition(ctx context.Context, orderID string, status entities.PaymentStatus, entry entities.TimelineEntry, meta map[string]interface{}) (entities.Order, error)
}
