package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentshop/cart-service/internal/domain/dto"
	"github.com/studentshop/cart-service/internal/domain/model"
	"github.com/studentshop/cart-service/internal/repository"
	"github.com/studentshop/cart-service/internal/service"
)

// stubProductsRepo serves a fixed product list for handler tests.
type stubProductsRepo struct {
	products []model.Product
}

func (s *stubProductsRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return nil, repository.ErrProductNotFound
}

func (s *stubProductsRepo) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	for i := range s.products {
		if s.products[i].Slug == slug {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (s *stubProductsRepo) List(ctx context.Context, featuredOnly bool, limit int64) ([]model.Product, error) {
	if featuredOnly {
		var out []model.Product
		for _, p := range s.products {
			if p.IsFeatured {
				out = append(out, p)
			}
		}
		return out, nil
	}
	return s.products, nil
}

func (s *stubProductsRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func (s *stubProductsRepo) InsertMany(ctx context.Context, products []model.Product) error {
	s.products = append(s.products, products...)
	return nil
}

func setupCatalogRouter() *gin.Engine {
	carts := service.NewCartService(nil)
	pricing := service.NewPricingService()

	repo := &stubProductsRepo{products: []model.Product{
		{Slug: "wireless-mouse", Name: "Wireless Mouse", Price: decimal.NewFromFloat(24.99), IsActive: true, IsFeatured: true},
		{Slug: "usb-c-hub", Name: "USB-C Hub", Price: decimal.NewFromInt(39), IsActive: true},
	}}

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.CartRateLimit = 0
	cfg.EnableIdempotency = false
	cfg.CartService = carts
	cfg.Pricing = pricing
	cfg.CheckoutService = service.NewCheckoutService(carts, pricing, nil)
	cfg.CatalogService = service.NewCatalogService(repo)

	return NewRouter(NewHealthHandler(), cfg)
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	router := setupCatalogRouter()

	t.Run("lists all products", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/products", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		dataBytes, _ := json.Marshal(resp.Data)
		var products []model.Product
		require.NoError(t, json.Unmarshal(dataBytes, &products))
		assert.Len(t, products, 2)
	})

	t.Run("featured filter", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/products?featured=true", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		dataBytes, _ := json.Marshal(resp.Data)
		var products []model.Product
		require.NoError(t, json.Unmarshal(dataBytes, &products))
		require.Len(t, products, 1)
		assert.Equal(t, "wireless-mouse", products[0].Slug)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	router := setupCatalogRouter()

	t.Run("resolves by slug", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/products/usb-c-hub", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		dataBytes, _ := json.Marshal(resp.Data)
		var product model.Product
		require.NoError(t, json.Unmarshal(dataBytes, &product))
		assert.Equal(t, "USB-C Hub", product.Name)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/products/no-such-product", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	})
}
