package response

import (
	"time"

	"marketplace_payments/internal/domain/entities"
)

type TimelineEntryResponse struct {
	Status        string    `json:"status"`
	At            time.Time `json:"at"`
	Via           string    `json:"via"`
	ProviderEvent string    `json:"provider_event,omitempty"`
}

type OrderResponse struct {
	OrderID       string                   `json:"order_id"`
	PaymentRef    string                   `json:"payment_ref"`
	PaymentMethod string                   `json:"payment_method"`
	PaymentStatus string                   `json:"payment_status"`
	Amount        float64                  `json:"amount,omitempty"`
	Currency      string                   `json:"currency,omitempty"`
	PaymentMeta   []map[string]interface{} `json:"payment_meta,omitempty"`
	Timeline      []TimelineEntryResponse  `json:"timeline"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	timeline := make([]TimelineEntryResponse, 0, len(o.Timeline))
	for _, e := range o.Timeline {
		timeline = append(timeline, TimelineEntryResponse{
			Status:        string(e.Status),
			At:            e.At,
			Via:           string(e.Via),
			ProviderEvent: e.ProviderEvent,
		})
	}
	return OrderResponse{
		OrderID:       o.ID,
		PaymentRef:    o.PaymentRef,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Amount:        o.Amount,
		Currency:      o.Currency,
		PaymentMeta:   o.PaymentMeta,
		Timeline:      timeline,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
