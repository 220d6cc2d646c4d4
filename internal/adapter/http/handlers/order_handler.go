package handlers

import (
	"errors"
	"log"
	"net/http"

	request "marketplace_payments/internal/adapter/http/dto/request"
	response "marketplace_payments/internal/adapter/http/dto/response"
	"marketplace_payments/internal/infrastructure/metrics"
	"marketplace_payments/internal/usecase"
	"marketplace_payments/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// OrderHandler handles checkout creation and order reads.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateStripeCheckout godoc
// @Summary  Create a Stripe Checkout Session and a pending order
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    payload body request.StripeCheckoutRequest true "checkout payload"
// @Success  200 {object} response.CheckoutResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /checkout/stripe [post]
func (h *OrderHandler) CreateStripeCheckout(c *gin.Context) {
	var payload request.StripeCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	totalAmount, err := payload.ResolveTotalAmount()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateStripeCheckout(c.Request.Context(), totalAmount, payload.ResolveCurrency(), payload.ResolveItems())
	if err != nil {
		log.Printf("[checkout][handler] create failed err=%v", err)
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] create success session_id=%s", session.ID)
	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// GetOrderByID godoc
// @Summary  Fetch an order with its payment timeline
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutAmount), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutNotConfigured):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAVAILABLE", "Checkout is not available", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
