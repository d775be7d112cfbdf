package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/studentshop/cart-service/internal/domain/model"
	"github.com/studentshop/cart-service/internal/repository"
)

// CatalogService provides read access to the product catalog.
type CatalogService interface {
	// GetProduct retrieves a product by hex ID, falling back to slug lookup.
	GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error)

	// ListProducts returns active products, optionally featured only.
	ListProducts(ctx context.Context, featuredOnly bool, limit int64) ([]model.Product, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	products repository.ProductsRepositoryInterface
}

// NewCatalogService creates a new catalog service. The repository may be nil,
// in which case every lookup reports not found.
func NewCatalogService(products repository.ProductsRepositoryInterface) *CatalogServiceImpl {
	return &CatalogServiceImpl{products: products}
}

// GetProduct retrieves a product by hex ID, falling back to slug lookup so
// storefront URLs like /products/wireless-mouse resolve too.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error) {
	if s.products == nil {
		return nil, repository.ErrProductNotFound
	}
	product, err := s.products.GetByID(ctx, idOrSlug)
	if err == repository.ErrProductNotFound {
		return s.products.GetBySlug(ctx, idOrSlug)
	}
	return product, err
}

// ListProducts returns active products, optionally featured only.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, featuredOnly bool, limit int64) ([]model.Product, error) {
	if s.products == nil {
		return []model.Product{}, nil
	}
	return s.products.List(ctx, featuredOnly, limit)
}

// defaultProducts is the starter catalog seeded into an empty database.
func defaultProducts(now time.Time) []model.Product {
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	return []model.Product{
		{
			Slug:        "wireless-mouse",
			Name:        "Wireless Mouse",
			Description: "Compact 2.4GHz wireless mouse with silent clicks",
			Price:       price("24.99"),
			Stock:       120,
			IsActive:    true,
			IsFeatured:  true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Slug:        "mechanical-keyboard",
			Name:        "Mechanical Keyboard",
			Description: "Tenkeyless mechanical keyboard, brown switches",
			Price:       price("89.50"),
			Stock:       45,
			IsActive:    true,
			IsFeatured:  true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Slug:        "usb-c-hub",
			Name:        "USB-C Hub",
			Description: "7-in-1 USB-C hub with HDMI and card reader",
			Price:       price("39.00"),
			Stock:       80,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Slug:        "design-patterns-ebook",
			Name:        "Design Patterns eBook",
			Description: "DRM-free ebook, instant download",
			Price:       price("15.00"),
			Stock:       0,
			IsDigital:   true,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Slug:        "pro-photo-preset-pack",
			Name:        "Pro Photo Preset Pack",
			Description: "50 editing presets delivered by download link",
			Price:       price("9.99"),
			Stock:       0,
			IsDigital:   true,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedDefaultProducts inserts the starter catalog when the products
// collection is empty. Failures are logged, not fatal; an empty catalog only
// affects browsing, not cart operations.
func SeedDefaultProducts(ctx context.Context, products repository.ProductsRepositoryInterface) {
	if products == nil {
		return
	}

	count, err := products.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check product count, skipping catalog seed")
		return
	}
	if count > 0 {
		return
	}

	seed := defaultProducts(time.Now())
	if err := products.InsertMany(ctx, seed); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default products")
		return
	}
	log.Info().Int("count", len(seed)).Msg("Seeded default product catalog")
}
