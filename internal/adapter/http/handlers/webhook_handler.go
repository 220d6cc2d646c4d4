package handlers

import (
	"errors"
	"log"
	"net/http"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/infrastructure/metrics"
	"marketplace_payments/internal/usecase"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// WebhookHandler exposes one endpoint per payment provider. Responses follow
// the providers' retry contracts: 200 acknowledges (including benign no-ops),
// 401 signals a bad signature, 500 asks the provider to redeliver later.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleStripe godoc
// @Summary  Stripe webhook receiver
// @Tags     webhooks
// @Accept   json
// @Produce  plain
// @Success  200 {string} string "ok"
// @Failure  401 {string} string "invalid signature"
// @Failure  500 {string} string "internal error"
// @Router   /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	h.handle(c, entities.PaymentMethodStripe, c.GetHeader("stripe-signature"))
}

// HandlePaystack godoc
// @Summary  Paystack webhook receiver
// @Tags     webhooks
// @Router   /webhooks/paystack [post]
func (h *WebhookHandler) HandlePaystack(c *gin.Context) {
	h.handle(c, entities.PaymentMethodPaystack, c.GetHeader("x-paystack-signature"))
}

// HandleFlutterwave godoc
// @Summary  Flutterwave webhook receiver
// @Tags     webhooks
// @Router   /webhooks/flutterwave [post]
func (h *WebhookHandler) HandleFlutterwave(c *gin.Context) {
	// Flutterwave has shipped both header spellings over time.
	header := c.GetHeader("verif-hash")
	if header == "" {
		header = c.GetHeader("verif_hash")
	}
	h.handle(c, entities.PaymentMethodFlutterwave, header)
}

// HandleNowPayments godoc
// @Summary  NOWPayments IPN receiver
// @Tags     webhooks
// @Router   /webhooks/nowpayments [post]
func (h *WebhookHandler) HandleNowPayments(c *gin.Context) {
	h.handle(c, entities.PaymentMethodCrypto, c.GetHeader("x-nowpayments-sig"))
}

func (h *WebhookHandler) handle(c *gin.Context, method entities.PaymentMethod, signatureHeader string) {
	provider := string(method)
	metrics.WebhookEventsTotal.WithLabelValues(provider).Inc()

	rawBody, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed method=%s err=%v", method, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	outcome, err := h.usecase.Process(c.Request.Context(), method, rawBody, signatureHeader)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrInvalidSignature):
			metrics.WebhookEventsRejectedTotal.WithLabelValues(provider).Inc()
			c.String(http.StatusUnauthorized, "invalid signature")
		case errors.Is(err, interfaces.ErrProviderNotConfigured):
			metrics.WebhookEventsRejectedTotal.WithLabelValues(provider).Inc()
			// Generic on purpose: never reveal which secret is missing.
			c.String(http.StatusInternalServerError, "internal error")
		default:
			log.Printf("[webhook][handler] process failed method=%s err=%v", method, err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	switch outcome {
	case usecase.WebhookOutcomeApplied:
		metrics.WebhookEventsAppliedTotal.WithLabelValues(provider).Inc()
	default:
		metrics.WebhookEventsIgnoredTotal.WithLabelValues(provider).Inc()
	}
	c.String(http.StatusOK, "ok")
}
