// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/studentshop/cart-service/config"
	"github.com/studentshop/cart-service/internal/repository"
	"github.com/studentshop/cart-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	CartService     service.CartService
	Pricing         service.PricingCalculator
	CheckoutService service.CheckoutService
	CatalogService  service.CatalogService
}

// InitializeServices wires the business services. When dbComponents is nil,
// cart snapshots fall back to the local filesystem and orders are not
// persisted.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var snapshots repository.CartSnapshotStore
	var ordersRepo repository.OrdersRepositoryInterface
	var productsRepo repository.ProductsRepositoryInterface

	if dbComponents != nil {
		snapshots = dbComponents.CartSnapshots
		ordersRepo = dbComponents.OrdersRepo
		productsRepo = dbComponents.ProductsRepo
	} else {
		fileStore, err := repository.NewFileSnapshotStore(cfg.Cart.SnapshotDir)
		if err != nil {
			log.Error().Err(err).Str("dir", cfg.Cart.SnapshotDir).
				Msg("Failed to create snapshot directory - carts will be memory-only")
		} else {
			snapshots = fileStore
		}
	}

	cartService := service.NewCartService(snapshots)

	pricing := service.NewPricingService(
		service.WithTaxRate(cfg.Pricing.TaxRate),
		service.WithFlatShippingCost(cfg.Pricing.FlatShippingCost),
		service.WithFreeShippingThreshold(cfg.Pricing.FreeShippingThreshold),
	)

	checkoutService := service.NewCheckoutService(cartService, pricing, ordersRepo)
	catalogService := service.NewCatalogService(productsRepo)

	return &ServiceComponents{
		CartService:     cartService,
		Pricing:         pricing,
		CheckoutService: checkoutService,
		CatalogService:  catalogService,
	}
}
