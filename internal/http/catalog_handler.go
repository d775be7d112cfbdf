package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studentshop/cart-service/internal/i18n"
	"github.com/studentshop/cart-service/internal/repository"
	"github.com/studentshop/cart-service/internal/service"
)

// CatalogHandler provides HTTP handlers for product catalog routes.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns active catalog products sorted by name. Use featured=true to limit to featured products.
// @Tags         Catalog
// @Produce      json
// @Param        featured query bool false "Only featured products"
// @Param        limit query int false "Maximum number of products to return"
// @Success      200 {object} dto.SuccessResponse "Products"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	featuredOnly := c.Query("featured") == "true"
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), featuredOnly, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(products)
}

// GetProduct handles GET /api/products/:productID requests.
//
// @Summary      Get a product
// @Description  Retrieves a catalog product by hex ID or URL slug.
// @Tags         Catalog
// @Produce      json
// @Param        productID path string true "Product ID or slug"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{productID} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(product)
}
