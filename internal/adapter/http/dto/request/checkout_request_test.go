package request

import (
	"errors"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestStripeCheckoutRequest_ResolveTotalAmount(t *testing.T) {
	t.Run("snake_case wins", func(t *testing.T) {
		r := StripeCheckoutRequest{TotalAmount: f(10), TotalAmountAlt: f(20)}
		got, err := r.ResolveTotalAmount()
		if err != nil || got != 10 {
			t.Fatalf("expected 10, got %v err=%v", got, err)
		}
	})

	t.Run("falls back to camelCase", func(t *testing.T) {
		r := StripeCheckoutRequest{TotalAmountAlt: f(20)}
		got, err := r.ResolveTotalAmount()
		if err != nil || got != 20 {
			t.Fatalf("expected 20, got %v err=%v", got, err)
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		if _, err := (StripeCheckoutRequest{}).ResolveTotalAmount(); !errors.Is(err, ErrInvalidCheckoutTotal) {
			t.Fatalf("expected ErrInvalidCheckoutTotal, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		if _, err := (StripeCheckoutRequest{TotalAmount: f(-1)}).ResolveTotalAmount(); !errors.Is(err, ErrInvalidCheckoutTotal) {
			t.Fatalf("expected ErrInvalidCheckoutTotal, got %v", err)
		}
	})
}

func TestStripeCheckoutRequest_ResolveItems(t *testing.T) {
	r := StripeCheckoutRequest{Items: []CheckoutItemRequest{{Name: " Sneakers ", Amount: 59.99, Quantity: 2}}}
	items := r.ResolveItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Sneakers" || items[0].Amount != 59.99 || items[0].Quantity != 2 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}
