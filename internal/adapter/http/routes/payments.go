package routes

import (
	"marketplace_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks = "/webhooks"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
)

func addPaymentRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, orderHandler *handlers.OrderHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		// One endpoint per provider; the provider enum picks the verifier.
		webhooks.POST("/stripe", webhookHandler.HandleStripe)
		webhooks.POST("/paystack", webhookHandler.HandlePaystack)
		webhooks.POST("/flutterwave", webhookHandler.HandleFlutterwave)
		webhooks.POST("/nowpayments", webhookHandler.HandleNowPayments)
	}

	rg.POST(PathCheckout+"/stripe", orderHandler.CreateStripeCheckout)
	rg.GET(PathOrders+"/:id", orderHandler.GetOrderByID)
}
