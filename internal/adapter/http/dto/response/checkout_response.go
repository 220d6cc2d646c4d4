package response

import "marketplace_payments/internal/domain/entities"

// CheckoutResponse mirrors the provider's session: the storefront redirects
// the buyer to URL and the webhook later echoes ID back as the payment_ref.
type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{ID: s.ID, URL: s.URL}
}
