package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"marketplace_payments/internal/domain/entities"
)

// NormalizedEvent is the canonical view of one provider webhook: which order
// reference it talks about and which status transition it asks for.
type NormalizedEvent struct {
	ProviderRef   string
	Status        entities.PaymentStatus
	ProviderEvent string
}

type extractorFunc func(body map[string]interface{}) *NormalizedEvent

// extractors maps each provider to a pure payload extractor. Keeping this a
// table (instead of branching inline in the handler) lets the whole status
// mapping be unit-tested without any HTTP mocking.
var extractors = map[entities.PaymentMethod]extractorFunc{
	entities.PaymentMethodStripe:      extractStripe,
	entities.PaymentMethodPaystack:    extractPaystack,
	entities.PaymentMethodFlutterwave: extractFlutterwave,
	entities.PaymentMethodCrypto:      extractNowPayments,
}

// NormalizeWebhook maps a provider's bespoke payload into a NormalizedEvent.
// A nil event with a nil error means "not actionable": unknown event type or
// missing reference. Callers acknowledge those with 200 and do nothing, so
// providers do not retry events this system does not care about.
func NormalizeWebhook(method entities.PaymentMethod, rawBody []byte) (*NormalizedEvent, error) {
	extract, ok := extractors[method]
	if !ok {
		return nil, fmt.Errorf("no payload extractor for method %q", method)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return nil, err
	}

	ev := extract(body)
	if ev == nil || ev.ProviderRef == "" {
		return nil, nil
	}
	return ev, nil
}

// extractStripe reads the Stripe event envelope ({type, data:{object}}).
// The reference field depends on the event type: the checkout session ID for
// completions, the payment intent for refunds and cancellations.
func extractStripe(body map[string]interface{}) *NormalizedEvent {
	eventType := stringField(body, "type")
	object := nestedMap(body, "data", "object")

	switch eventType {
	case "checkout.session.completed":
		return &NormalizedEvent{
			ProviderRef:   stringField(object, "id"),
			Status:        entities.PaymentStatusPaid,
			ProviderEvent: eventType,
		}
	case "charge.refunded":
		return &NormalizedEvent{
			ProviderRef:   stringField(object, "payment_intent"),
			Status:        entities.PaymentStatusRefunded,
			ProviderEvent: eventType,
		}
	case "payment_intent.canceled":
		return &NormalizedEvent{
			ProviderRef:   stringField(object, "id"),
			Status:        entities.PaymentStatusCancelled,
			ProviderEvent: eventType,
		}
	}
	return nil
}

func extractPaystack(body map[string]interface{}) *NormalizedEvent {
	eventType := stringField(body, "event")
	data := nestedMap(body, "data")

	ref := stringField(data, "reference")
	if ref == "" {
		ref = stringField(data, "ref")
	}

	switch eventType {
	case "charge.success":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusPaid, ProviderEvent: eventType}
	case "refund.processed":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusRefunded, ProviderEvent: eventType}
	case "charge.failed":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusCancelled, ProviderEvent: eventType}
	}
	return nil
}

func extractFlutterwave(body map[string]interface{}) *NormalizedEvent {
	eventType := stringField(body, "event")
	data := nestedMap(body, "data")

	ref := stringField(data, "tx_ref")
	if ref == "" {
		ref = stringField(data, "txRef")
	}

	switch eventType {
	case "charge.completed":
		// Flutterwave delivers charge.completed for failed charges too; only
		// data.status distinguishes them.
		if stringField(data, "status") != "successful" {
			return nil
		}
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusPaid, ProviderEvent: eventType}
	case "refund.completed":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusRefunded, ProviderEvent: eventType}
	case "charge.failed":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusCancelled, ProviderEvent: eventType}
	}
	return nil
}

// extractNowPayments reads the NOWPayments IPN shape: status lives at the top
// level and payment_id arrives as a JSON number.
func extractNowPayments(body map[string]interface{}) *NormalizedEvent {
	paymentStatus := stringField(body, "payment_status")
	ref := anyToString(body["payment_id"])

	switch paymentStatus {
	case "finished":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusPaid, ProviderEvent: "payment_status." + paymentStatus}
	case "refunded":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusRefunded, ProviderEvent: "payment_status." + paymentStatus}
	case "failed", "expired":
		return &NormalizedEvent{ProviderRef: ref, Status: entities.PaymentStatusCancelled, ProviderEvent: "payment_status." + paymentStatus}
	}
	return nil
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func nestedMap(m map[string]interface{}, keys ...string) map[string]interface{} {
	current := m
	for _, key := range keys {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func anyToString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		// json.Unmarshal gives float64 for numbers; payment IDs are integral.
		return fmt.Sprintf("%.0f", t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
