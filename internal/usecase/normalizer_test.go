package usecase

import (
	"testing"

	"marketplace_payments/internal/domain/entities"
)

func TestNormalizeWebhook_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     entities.PaymentMethod
		body       string
		wantRef    string
		wantStatus entities.PaymentStatus
		wantNil    bool
	}{
		{
			name:       "stripe checkout completed",
			method:     entities.PaymentMethodStripe,
			body:       `{"type":"checkout.session.completed","data":{"object":{"id":"sess_123"}}}`,
			wantRef:    "sess_123",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:       "stripe charge refunded uses payment_intent",
			method:     entities.PaymentMethodStripe,
			body:       `{"type":"charge.refunded","data":{"object":{"id":"ch_1","payment_intent":"pi_55"}}}`,
			wantRef:    "pi_55",
			wantStatus: entities.PaymentStatusRefunded,
		},
		{
			name:       "stripe payment intent canceled",
			method:     entities.PaymentMethodStripe,
			body:       `{"type":"payment_intent.canceled","data":{"object":{"id":"pi_9"}}}`,
			wantRef:    "pi_9",
			wantStatus: entities.PaymentStatusCancelled,
		},
		{
			name:    "stripe unknown event",
			method:  entities.PaymentMethodStripe,
			body:    `{"type":"invoice.created","data":{"object":{"id":"in_1"}}}`,
			wantNil: true,
		},
		{
			name:       "paystack charge success",
			method:     entities.PaymentMethodPaystack,
			body:       `{"event":"charge.success","data":{"reference":"abc"}}`,
			wantRef:    "abc",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:       "paystack falls back to ref field",
			method:     entities.PaymentMethodPaystack,
			body:       `{"event":"charge.success","data":{"ref":"xyz"}}`,
			wantRef:    "xyz",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:       "paystack refund processed",
			method:     entities.PaymentMethodPaystack,
			body:       `{"event":"refund.processed","data":{"reference":"abc"}}`,
			wantRef:    "abc",
			wantStatus: entities.PaymentStatusRefunded,
		},
		{
			name:       "paystack charge failed",
			method:     entities.PaymentMethodPaystack,
			body:       `{"event":"charge.failed","data":{"reference":"abc"}}`,
			wantRef:    "abc",
			wantStatus: entities.PaymentStatusCancelled,
		},
		{
			name:    "paystack missing reference",
			method:  entities.PaymentMethodPaystack,
			body:    `{"event":"charge.success","data":{"amount":100}}`,
			wantNil: true,
		},
		{
			name:    "paystack unknown event",
			method:  entities.PaymentMethodPaystack,
			body:    `{"event":"transfer.success","data":{"reference":"abc"}}`,
			wantNil: true,
		},
		{
			name:       "flutterwave successful charge",
			method:     entities.PaymentMethodFlutterwave,
			body:       `{"event":"charge.completed","data":{"tx_ref":"tx-1","status":"successful"}}`,
			wantRef:    "tx-1",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:    "flutterwave completed but not successful",
			method:  entities.PaymentMethodFlutterwave,
			body:    `{"event":"charge.completed","data":{"tx_ref":"tx-1","status":"failed"}}`,
			wantNil: true,
		},
		{
			name:       "flutterwave camelCase ref",
			method:     entities.PaymentMethodFlutterwave,
			body:       `{"event":"charge.completed","data":{"txRef":"tx-2","status":"successful"}}`,
			wantRef:    "tx-2",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:       "flutterwave refund completed",
			method:     entities.PaymentMethodFlutterwave,
			body:       `{"event":"refund.completed","data":{"tx_ref":"tx-1"}}`,
			wantRef:    "tx-1",
			wantStatus: entities.PaymentStatusRefunded,
		},
		{
			name:       "flutterwave charge failed",
			method:     entities.PaymentMethodFlutterwave,
			body:       `{"event":"charge.failed","data":{"tx_ref":"tx-1"}}`,
			wantRef:    "tx-1",
			wantStatus: entities.PaymentStatusCancelled,
		},
		{
			name:       "nowpayments finished",
			method:     entities.PaymentMethodCrypto,
			body:       `{"payment_status":"finished","payment_id":"np-1"}`,
			wantRef:    "np-1",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:       "nowpayments numeric payment id",
			method:     entities.PaymentMethodCrypto,
			body:       `{"payment_status":"finished","payment_id":5077125931}`,
			wantRef:    "5077125931",
			wantStatus: entities.PaymentStatusPaid,
		},
		{
			name:       "nowpayments refunded",
			method:     entities.PaymentMethodCrypto,
			body:       `{"payment_status":"refunded","payment_id":"np-1"}`,
			wantRef:    "np-1",
			wantStatus: entities.PaymentStatusRefunded,
		},
		{
			name:       "nowpayments failed",
			method:     entities.PaymentMethodCrypto,
			body:       `{"payment_status":"failed","payment_id":"np-1"}`,
			wantRef:    "np-1",
			wantStatus: entities.PaymentStatusCancelled,
		},
		{
			name:       "nowpayments expired",
			method:     entities.PaymentMethodCrypto,
			body:       `{"payment_status":"expired","payment_id":"np-1"}`,
			wantRef:    "np-1",
			wantStatus: entities.PaymentStatusCancelled,
		},
		{
			name:    "nowpayments waiting is not actionable",
			method:  entities.PaymentMethodCrypto,
			body:    `{"payment_status":"waiting","payment_id":"np-1"}`,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := NormalizeWebhook(tt.method, []byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if ev != nil {
					t.Fatalf("expected nil event, got %+v", ev)
				}
				return
			}
			if ev == nil {
				t.Fatalf("expected event, got nil")
			}
			if ev.ProviderRef != tt.wantRef {
				t.Fatalf("expected ref %q, got %q", tt.wantRef, ev.ProviderRef)
			}
			if ev.Status != tt.wantStatus {
				t.Fatalf("expected status %q, got %q", tt.wantStatus, ev.Status)
			}
		})
	}
}

func TestNormalizeWebhook_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		if _, err := NormalizeWebhook(entities.PaymentMethodPaystack, []byte("{")); err == nil {
			t.Fatal("expected error for invalid json")
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		if _, err := NormalizeWebhook(entities.PaymentMethod("carrier-pigeon"), []byte(`{}`)); err == nil {
			t.Fatal("expected error for unknown method")
		}
	})
}
