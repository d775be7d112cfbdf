package http

import (
	"github.com/gin-gonic/gin"

	"github.com/studentshop/cart-service/internal/middleware"
	"github.com/studentshop/cart-service/internal/service"
)

// CartRoutes handles cart and checkout route registration.
type CartRoutes struct {
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(carts service.CartService, pricing service.PricingCalculator, checkout service.CheckoutService) *CartRoutes {
	return &CartRoutes{
		cartHandler:     NewCartHandler(carts, pricing),
		checkoutHandler: NewCheckoutHandler(checkout),
	}
}

// RegisterRoutes registers cart, checkout, and order routes. Cart mutations
// get their own per-cart rate limiter when one is configured.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	carts := rg.Group("/carts")
	if cfg.CartRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.CartRateLimit, cfg.RateWindow)
		carts.Use(limiter.CartRateLimit())
	}

	carts.GET("/:cartID", r.cartHandler.GetCart)
	carts.DELETE("/:cartID", r.cartHandler.ClearCart)
	carts.POST("/:cartID/items", r.cartHandler.AddItem)
	carts.PUT("/:cartID/items/:lineID", r.cartHandler.UpdateQuantity)
	carts.DELETE("/:cartID/items/:lineID", r.cartHandler.RemoveItem)
	carts.GET("/:cartID/products/:productID", r.cartHandler.GetProductPresence)

	rg.POST("/checkout/:cartID", r.checkoutHandler.PlaceOrder)
	rg.GET("/orders", r.checkoutHandler.ListOrders)
	rg.GET("/orders/:orderID", r.checkoutHandler.GetOrder)
}

// GetCartHandler returns the underlying cart handler.
func (r *CartRoutes) GetCartHandler() *CartHandler {
	return r.cartHandler
}
