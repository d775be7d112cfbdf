// Package http provides HTTP handlers and routing for the cart service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentshop/cart-service/internal/domain/dto"
	"github.com/studentshop/cart-service/internal/domain/model"
	"github.com/studentshop/cart-service/internal/i18n"
	"github.com/studentshop/cart-service/internal/middleware"
	"github.com/studentshop/cart-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes.
type CartHandler struct {
	carts   service.CartService
	pricing service.PricingCalculator
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts service.CartService, pricing service.PricingCalculator) *CartHandler {
	return &CartHandler{
		carts:   carts,
		pricing: pricing,
	}
}

// cartKey extracts the cart key from the route and records it on the context
// so the request logger and audit entries can attach it.
func cartKey(c *gin.Context) string {
	key := c.Param("cartID")
	c.Set(string(middleware.CartKeyKey), key)
	return key
}

// auditCartAction writes an audit entry when a logging service is wired.
func auditCartAction(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// respondCart sends the cart snapshot with its totals preview.
func (h *CartHandler) respondCart(c *gin.Context, cart model.Cart) {
	totals := h.pricing.TotalsForCart(cart)
	NewResponseBuilder(c).SuccessOK(dto.NewCartView(cart, totals))
}

// AddItem handles POST /api/carts/:cartID/items requests.
//
// @Summary      Add a product to the cart
// @Description  Adds a product to the cart. If a line for the same product already exists, its quantity is increased instead of creating a duplicate line. Supports idempotency via Idempotency-Key header.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Product to add"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCartItem, err)
		return
	}

	line := model.CartLine{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		ImageRef:  req.ImageRef,
		Quantity:  req.Quantity,
		IsDigital: req.IsDigital,
	}

	cart, err := h.carts.AddItem(c.Request.Context(), key, line)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditCartAction(c, "add_item", "Product added to cart", map[string]interface{}{
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})
	h.respondCart(c, cart)
}

// RemoveItem handles DELETE /api/carts/:cartID/items/:lineID requests.
//
// @Summary      Remove a cart line
// @Description  Removes the line with the given line ID. Removing a line that no longer exists is a no-op and still returns the current cart.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Param        lineID path string true "Line identifier"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID}/items/{lineID} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)
	lineID := c.Param("lineID")

	cart, err := h.carts.RemoveItem(c.Request.Context(), key, lineID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditCartAction(c, "remove_item", "Cart line removed", map[string]interface{}{
		"line_id": lineID,
	})
	h.respondCart(c, cart)
}

// UpdateQuantity handles PUT /api/carts/:cartID/items/:lineID requests.
//
// @Summary      Update a cart line quantity
// @Description  Sets the quantity of the line with the given line ID. A quantity below 1 removes the line.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Param        lineID path string true "Line identifier"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID}/items/{lineID} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)
	lineID := c.Param("lineID")

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.carts.UpdateQuantity(c.Request.Context(), key, lineID, req.Quantity)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditCartAction(c, "update_quantity", "Cart line quantity updated", map[string]interface{}{
		"line_id":  lineID,
		"quantity": req.Quantity,
	})
	h.respondCart(c, cart)
}

// GetCart handles GET /api/carts/:cartID requests.
//
// @Summary      Get the cart
// @Description  Returns the cart snapshot with derived item count, subtotal, and an order-total preview.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Success      200 {object} dto.SuccessResponse "Current cart"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)

	cart, err := h.carts.GetCart(c.Request.Context(), key)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	h.respondCart(c, cart)
}

// ClearCart handles DELETE /api/carts/:cartID requests.
//
// @Summary      Clear the cart
// @Description  Removes all lines from the cart and deletes its persisted snapshot.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Success      200 {object} dto.SuccessResponse "Emptied cart"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID} [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)

	cart, err := h.carts.Clear(c.Request.Context(), key)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditCartAction(c, "clear_cart", "Cart cleared", nil)
	h.respondCart(c, cart)
}

// GetProductPresence handles GET /api/carts/:cartID/products/:productID requests.
//
// @Summary      Check whether a product is in the cart
// @Description  Reports whether the cart holds a line for the product and at what quantity. Used by product pages to render in-cart badges.
// @Tags         Carts
// @Produce      json
// @Param        cartID path string true "Cart identifier"
// @Param        productID path string true "Product identifier"
// @Success      200 {object} dto.SuccessResponse "Presence and quantity"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{cartID}/products/{productID} [get]
func (h *CartHandler) GetProductPresence(c *gin.Context) {
	builder := NewResponseBuilder(c)
	key := cartKey(c)
	productID := c.Param("productID")

	quantity, err := h.carts.ItemQuantity(c.Request.Context(), key, productID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.ProductPresence{
		ProductID: productID,
		InCart:    quantity > 0,
		Quantity:  quantity,
	})
}
