package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

// WebhookOutcome is the terminal state of one webhook invocation that made it
// past signature verification.
type WebhookOutcome string

const (
	// WebhookOutcomeApplied means a status transition was written to an order.
	WebhookOutcomeApplied WebhookOutcome = "applied"
	// WebhookOutcomeIgnored means the event was acknowledged without any state
	// mutation: unknown event type, missing reference or no matching order.
	WebhookOutcomeIgnored WebhookOutcome = "ignored"
)

// IWebhookUseCase runs the verify -> normalize -> locate -> apply pipeline for
// one provider webhook.
//
// Error contract for callers:
//   - interfaces.ErrProviderNotConfigured => 500, generic message
//   - interfaces.ErrInvalidSignature      => 401
//   - anything else                       => 500 (provider retries redeliver)

type IWebhookUseCase interface {
	Process(ctx context.Context, method entities.PaymentMethod, rawBody []byte, signatureHeader string) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	repo      interfaces.IOrderRepository
	verifiers map[entities.PaymentMethod]interfaces.ISignatureVerifier
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.IOrderRepository, verifiers []interfaces.ISignatureVerifier) *WebhookUseCase {
	byMethod := make(map[entities.PaymentMethod]interfaces.ISignatureVerifier, len(verifiers))
	for _, v := range verifiers {
		byMethod[v.Method()] = v
	}
	return &WebhookUseCase{repo: repo, verifiers: byMethod}
}

func (u *WebhookUseCase) Process(ctx context.Context, method entities.PaymentMethod, rawBody []byte, signatureHeader string) (WebhookOutcome, error) {
	log.Printf("[webhook][usecase] process start method=%s body_len=%d", method, len(rawBody))

	verifier, ok := u.verifiers[method]
	if !ok {
		log.Printf("[webhook][usecase] no verifier registered method=%s", method)
		return "", interfaces.ErrProviderNotConfigured
	}
	if err := verifier.Verify(rawBody, signatureHeader); err != nil {
		if errors.Is(err, interfaces.ErrInvalidSignature) {
			log.Printf("[webhook][usecase] signature rejected method=%s", method)
		} else {
			log.Printf("[webhook][usecase] verification unavailable method=%s err=%v", method, err)
		}
		return "", err
	}

	event, err := NormalizeWebhook(method, rawBody)
	if err != nil {
		// Malformed or unparseable bodies are acknowledged, not retried.
		log.Printf("[webhook][usecase] normalize failed method=%s err=%v", method, err)
		return WebhookOutcomeIgnored, nil
	}
	if event == nil {
		log.Printf("[webhook][usecase] event not actionable method=%s", method)
		return WebhookOutcomeIgnored, nil
	}

	if u.repo == nil {
		return "", errors.New("order repository not configured")
	}

	order, err := u.repo.FindByPaymentRef(ctx, event.ProviderRef, method)
	if err != nil {
		log.Printf("[webhook][usecase] order lookup failed method=%s ref=%s err=%v", method, event.ProviderRef, err)
		return "", err
	}
	if order.ID == "" {
		// Benign: stale or test events reference orders that were never
		// created here. Acknowledge so the provider stops retrying.
		log.Printf("[webhook][usecase] order not found method=%s ref=%s event=%s", method, event.ProviderRef, event.ProviderEvent)
		return WebhookOutcomeIgnored, nil
	}

	if order.PaymentStatus.IsTerminal() && order.PaymentStatus != event.Status {
		log.Printf("[webhook][usecase] overwriting terminal status order_id=%s from=%s to=%s event=%s",
			order.ID, order.PaymentStatus, event.Status, event.ProviderEvent)
	}

	entry := entities.TimelineEntry{
		Status:        event.Status,
		At:            time.Now().UTC(),
		Via:           method,
		ProviderEvent: event.ProviderEvent,
	}
	meta := map[string]interface{}{"provider_event": event.ProviderEvent}

	if _, err := u.repo.AppendTransition(ctx, order.ID, event.Status, entry, meta); err != nil {
		log.Printf("[webhook][usecase] transition failed order_id=%s status=%s err=%v", order.ID, event.Status, err)
		return "", err
	}

	log.Printf("[webhook][usecase] transition applied order_id=%s status=%s via=%s event=%s",
		order.ID, event.Status, method, event.ProviderEvent)
	return WebhookOutcomeApplied, nil
}
