package entities

import "time"

// PaymentMethod identifies the payment provider an order was checked out with.
//
// Immutable once the order is created; webhooks are only matched against
// orders created with the same method.

type PaymentMethod string

const (
	PaymentMethodStripe      PaymentMethod = "stripe"
	PaymentMethodPaystack    PaymentMethod = "paystack"
	PaymentMethodFlutterwave PaymentMethod = "flutterwave"
	PaymentMethodCrypto      PaymentMethod = "crypto"
)

// PaymentStatus is the canonical order-payment vocabulary every provider's own
// status vocabulary is mapped into.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsTerminal reports whether a status should normally not be overwritten.
// Transitions out of a terminal status are still applied (last write wins),
// the applier only logs them.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusRefunded || s == PaymentStatusCancelled
}

// TimelineEntry is one element of the order's append-only audit trail.
// At is the processing time, not the provider's event time.
type TimelineEntry struct {
	Status        PaymentStatus `json:"status"`
	At            time.Time     `json:"at"`
	Via           PaymentMethod `json:"via"`
	ProviderEvent string        `json:"provider_event,omitempty"`
}

// Order is the payment view of a marketplace order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_ref-index): payment_ref
//
// Invariants owned by this service:
//   - Timeline only grows; entries are never removed or reordered.
//   - PaymentStatus always equals the status of the last timeline entry.
//   - PaymentRef is set at checkout and immutable afterwards.

type Order struct {
	ID            string        `json:"id"`
	PaymentRef    string        `json:"payment_ref"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Amount        float64       `json:"amount,omitempty"`
	Currency      string        `json:"currency,omitempty"`

	// PaymentMeta keeps one raw metadata blob per processed webhook, in
	// processing order, for traceability/audit.
	PaymentMeta []map[string]interface{} `json:"payment_meta,omitempty"`
	Timeline    []TimelineEntry          `json:"timeline,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckoutItem is a line item sent to the checkout gateway.
type CheckoutItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int64   `json:"quantity"`
}

// CheckoutSession is the provider-hosted payment page created at checkout.
// ID doubles as the order's payment_ref.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
