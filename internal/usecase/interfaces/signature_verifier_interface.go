package interfaces

import (
	"errors"

	"marketplace_payments/internal/domain/entities"
)

var (
	// ErrProviderNotConfigured means the provider's secret is missing from the
	// environment. Distinct from a signature mismatch: callers answer 500, not 401.
	ErrProviderNotConfigured = errors.New("payment provider not configured")

	// ErrInvalidSignature means the header does not prove the body came from
	// the claimed provider.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// ISignatureVerifier proves a webhook body originated from the claimed
// payment provider. Implementations are pure functions of their inputs and
// must never log secrets or computed digests.
//
// Providers differ in what they prove: Stripe/Paystack/NOWPayments sign the
// exact payload (HMAC), Flutterwave only presents a pre-shared token. The
// interface deliberately keeps that asymmetry behind one contract instead of
// pretending every provider binds the signature to the body.
type ISignatureVerifier interface {
	Method() entities.PaymentMethod
	Verify(rawBody []byte, headerValue string) error
}
