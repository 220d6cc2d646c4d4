package payments

import (
	"context"
	"errors"
	"log"
	"math"
	"os"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

var ErrMissingStripeSecret = errors.New("missing STRIPE_SECRET")

const defaultLineItemName = "Order total"

// StripeGateway talks to Stripe for both directions of the payment flow:
// creating Checkout Sessions and verifying incoming webhook signatures.
//
// Verification delegates to the SDK's ConstructEvent, which parses while it
// verifies; the normalizer re-reads the event JSON afterwards so the verifier
// contract stays symmetric with the other providers.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

var (
	_ interfaces.ICheckoutGateway   = (*StripeGateway)(nil)
	_ interfaces.ISignatureVerifier = (*StripeGateway)(nil)
)

func NewStripeGateway(secretKey, webhookSecret string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payments][stripe] missing STRIPE_SECRET")
		return nil, ErrMissingStripeSecret
	}

	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[payments][stripe] client initialized")

	return &StripeGateway{api: api, webhookSecret: webhookSecret}, nil
}

func (g *StripeGateway) Method() entities.PaymentMethod { return entities.PaymentMethodStripe }

func (g *StripeGateway) Verify(rawBody []byte, headerValue string) error {
	if g == nil || g.webhookSecret == "" {
		return interfaces.ErrProviderNotConfigured
	}
	if _, err := webhook.ConstructEvent(rawBody, headerValue, g.webhookSecret); err != nil {
		return interfaces.ErrInvalidSignature
	}
	return nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, totalAmount float64, currency string, items []entities.CheckoutItem) (entities.CheckoutSession, error) {
	if g == nil || g.api == nil {
		return entities.CheckoutSession{}, ErrMissingStripeSecret
	}
	log.Printf("[payments][stripe] checkout create start amount=%.2f currency=%s items=%d", totalAmount, currency, len(items))

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  toLineItems(totalAmount, currency, items),
		SuccessURL: stripe.String(getenvDefault("CHECKOUT_SUCCESS_URL", "https://example.com/checkout/success")),
		CancelURL:  stripe.String(getenvDefault("CHECKOUT_CANCEL_URL", "https://example.com/checkout/cancel")),
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payments][stripe] checkout create failed err=%v", err)
		return entities.CheckoutSession{}, err
	}

	log.Printf("[payments][stripe] checkout create success session_id=%s", session.ID)
	return entities.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func toLineItems(totalAmount float64, currency string, items []entities.CheckoutItem) []*stripe.CheckoutSessionLineItemParams {
	if len(items) == 0 {
		return []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(toMinorUnits(totalAmount)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripe.String(defaultLineItemName)},
			},
			Quantity: stripe.Int64(1),
		}}
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		name := item.Name
		if name == "" {
			name = defaultLineItemName
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(toMinorUnits(item.Amount)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripe.String(name)},
			},
			Quantity: stripe.Int64(quantity),
		})
	}
	return lineItems
}

// toMinorUnits converts a major-unit amount (e.g. 12.34 USD) to the integer
// minor units Stripe expects (1234 cents).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
