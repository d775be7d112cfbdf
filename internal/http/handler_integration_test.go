//go:build integration

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentshop/cart-service/internal/repository"
	"github.com/studentshop/cart-service/internal/service"
	"github.com/studentshop/cart-service/internal/testutil"
)

// setupMongoBackedRouter wires the full stack against the shared MongoDB
// container: Mongo snapshot store, orders repository, and catalog.
func setupMongoBackedRouter(t *testing.T) (*gin.Engine, *repository.MongoDB) {
	t.Helper()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)

	carts := service.NewCartService(repository.NewCartsRepository(db))
	pricing := service.NewPricingService()
	checkout := service.NewCheckoutService(carts, pricing, repository.NewOrdersRepository(db))
	catalog := service.NewCatalogService(repository.NewProductsRepository(db))

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.CartRateLimit = 0
	cfg.EnableIdempotency = false
	cfg.CartService = carts
	cfg.Pricing = pricing
	cfg.CheckoutService = checkout
	cfg.CatalogService = catalog

	return NewRouter(NewHealthHandler(), cfg), db
}

func TestCheckoutFlow_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	router, db := setupMongoBackedRouter(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	// Build up a cart.
	w := doJSON(router, http.MethodPost, "/api/carts/cart-1/items",
		`{"product_id": "p1", "name": "Keyboard", "unit_price": "89.50", "quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/carts/cart-1/items",
		`{"product_id": "ebook", "name": "eBook", "unit_price": "15.00", "quantity": 1, "is_digital": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	view := cartViewFrom(t, w)
	assert.Equal(t, 3, view.ItemCount)

	// A fresh service instance hydrates the persisted snapshot.
	rehydrated := setupMongoBackedRouterForDB(t, db)
	w = doJSON(rehydrated, http.MethodGet, "/api/carts/cart-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, cartViewFrom(t, w).ItemCount, "cart must survive a restart")

	// Place the order.
	w = doJSON(router, http.MethodPost, "/api/checkout/cart-1", checkoutBody)
	require.Equal(t, http.StatusCreated, w.Code)
	order := orderViewFrom(t, w)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "194", order.Totals.Subtotal.String())
	assert.Equal(t, "218.25", order.Totals.GrandTotal.String())

	// The order is retrievable and the cart is now empty.
	w = doJSON(router, http.MethodGet, "/api/orders/"+order.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.OrderNumber, orderViewFrom(t, w).OrderNumber)

	// The confirmation page links orders by number.
	w = doJSON(router, http.MethodGet, "/api/orders/"+order.OrderNumber, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.ID, orderViewFrom(t, w).ID)

	w = doJSON(router, http.MethodGet, "/api/carts/cart-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartViewFrom(t, w).Lines)
}

// setupMongoBackedRouterForDB builds a second router sharing an existing
// database, simulating a process restart against the same data.
func setupMongoBackedRouterForDB(t *testing.T, db *repository.MongoDB) *gin.Engine {
	t.Helper()

	carts := service.NewCartService(repository.NewCartsRepository(db))
	pricing := service.NewPricingService()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.CartRateLimit = 0
	cfg.EnableIdempotency = false
	cfg.CartService = carts
	cfg.Pricing = pricing
	cfg.CheckoutService = service.NewCheckoutService(carts, pricing, nil)
	cfg.CatalogService = service.NewCatalogService(nil)

	return NewRouter(NewHealthHandler(), cfg)
}
