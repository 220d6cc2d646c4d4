package request

import (
	"errors"
	"strings"

	"marketplace_payments/internal/domain/entities"
)

var ErrInvalidCheckoutTotal = errors.New("invalid checkout total amount")

type CheckoutItemRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int64   `json:"quantity"`
}

// StripeCheckoutRequest is the storefront checkout payload. The web client
// historically sent camelCase (`totalAmount`), newer clients send snake_case;
// both are accepted.
type StripeCheckoutRequest struct {
	Items          []CheckoutItemRequest `json:"items"`
	TotalAmount    *float64              `json:"total_amount"`
	TotalAmountAlt *float64              `json:"totalAmount"`
	Currency       string                `json:"currency"`
	CurrencyAlt    string                `json:"currencyCode"`
}

func (r StripeCheckoutRequest) ResolveTotalAmount() (float64, error) {
	amount := r.TotalAmount
	if amount == nil {
		amount = r.TotalAmountAlt
	}
	if amount == nil || *amount <= 0 {
		return 0, ErrInvalidCheckoutTotal
	}
	return *amount, nil
}

func (r StripeCheckoutRequest) ResolveCurrency() string {
	if v := strings.TrimSpace(r.Currency); v != "" {
		return v
	}
	return strings.TrimSpace(r.CurrencyAlt)
}

func (r StripeCheckoutRequest) ResolveItems() []entities.CheckoutItem {
	items := make([]entities.CheckoutItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entities.CheckoutItem{
			Name:     strings.TrimSpace(item.Name),
			Amount:   item.Amount,
			Quantity: item.Quantity,
		})
	}
	return items
}
