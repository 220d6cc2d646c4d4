package payments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

// hmacSHA512Verifier covers the providers whose webhooks carry a hex-encoded
// HMAC-SHA512 of the raw body (Paystack, NOWPayments). The comparison is
// constant-time via hmac.Equal.
type hmacSHA512Verifier struct {
	method entities.PaymentMethod
	secret string
}

var _ interfaces.ISignatureVerifier = (*hmacSHA512Verifier)(nil)

// NewPaystackVerifier verifies x-paystack-signature headers with the
// Paystack secret key.
func NewPaystackVerifier(secretKey string) interfaces.ISignatureVerifier {
	return &hmacSHA512Verifier{method: entities.PaymentMethodPaystack, secret: secretKey}
}

// NewNowPaymentsVerifier verifies x-nowpayments-sig headers with the IPN secret.
func NewNowPaymentsVerifier(ipnSecret string) interfaces.ISignatureVerifier {
	return &hmacSHA512Verifier{method: entities.PaymentMethodCrypto, secret: ipnSecret}
}

func (v *hmacSHA512Verifier) Method() entities.PaymentMethod { return v.method }

func (v *hmacSHA512Verifier) Verify(rawBody []byte, headerValue string) error {
	if v.secret == "" {
		return interfaces.ErrProviderNotConfigured
	}
	if headerValue == "" {
		return interfaces.ErrInvalidSignature
	}

	mac := hmac.New(sha512.New, []byte(v.secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(headerValue)) {
		return interfaces.ErrInvalidSignature
	}
	return nil
}
