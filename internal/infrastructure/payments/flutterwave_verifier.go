package payments

import (
	"crypto/subtle"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

// flutterwaveVerifier implements Flutterwave's shared-secret model: the
// verif-hash header is a pre-shared static token, not a signature computed
// over the payload. It proves "the sender knows the secret", nothing about
// the body itself.
type flutterwaveVerifier struct {
	secretHash string
}

var _ interfaces.ISignatureVerifier = (*flutterwaveVerifier)(nil)

func NewFlutterwaveVerifier(secretHash string) interfaces.ISignatureVerifier {
	return &flutterwaveVerifier{secretHash: secretHash}
}

func (v *flutterwaveVerifier) Method() entities.PaymentMethod {
	return entities.PaymentMethodFlutterwave
}

func (v *flutterwaveVerifier) Verify(_ []byte, headerValue string) error {
	if v.secretHash == "" {
		return interfaces.ErrProviderNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(v.secretHash), []byte(headerValue)) != 1 {
		return interfaces.ErrInvalidSignature
	}
	return nil
}
