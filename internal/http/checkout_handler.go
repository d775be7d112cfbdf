package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studentshop/cart-service/internal/domain/dto"
	"github.com/studentshop/cart-service/internal/i18n"
	"github.com/studentshop/cart-service/internal/middleware"
	"github.com/studentshop/cart-service/internal/repository"
	"github.com/studentshop/cart-service/internal/service"
)

// CheckoutHandler provides HTTP handlers for checkout and order routes.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler instance.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// PlaceOrder handles POST /api/checkout/:cartID requests.
//
// @Summary      Place an order from the cart
// @Description  Freezes the current cart, computes shipping, tax, and grand total, records the order, and clears the cart. Shipping details are required only when the cart contains physical items. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CheckoutRequest true "Shipping and payment details"
// @Success      201 {object} dto.SuccessResponse "Placed order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/checkout/{cartID} [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), key, req)
	if err != nil {
		var validationErr *dto.ValidationError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
		case errors.Is(err, service.ErrShippingRequired):
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		case errors.As(err, &validationErr):
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "checkout", "Order placed", map[string]interface{}{
				"order_number": order.OrderNumber,
				"grand_total":  order.Totals.GrandTotal.String(),
				"digital_only": order.IsDigitalOrder,
			})
		}
	}

	builder.SuccessCreated(dto.NewOrderView(*order))
}

// GetOrder handles GET /api/orders/:orderID requests.
//
// @Summary      Get an order
// @Description  Retrieves a placed order by its ID or by its order number (ORD...).
// @Tags         Checkout
// @Produce      json
// @Param        orderID path string true "Order identifier"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders/{orderID} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.checkout.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.NewOrderView(*order))
}

// ListOrders handles GET /api/orders requests.
//
// @Summary      List recent orders
// @Description  Returns the most recently placed orders, newest first.
// @Tags         Checkout
// @Produce      json
// @Param        limit query int false "Maximum number of orders to return" default(50)
// @Success      200 {object} dto.SuccessResponse "Orders"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders [get]
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var limit int64 = 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	orders, err := h.checkout.ListOrders(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	views := make([]dto.OrderView, len(orders))
	for i, o := range orders {
		views[i] = dto.NewOrderView(o)
	}
	builder.SuccessOK(views)
}
