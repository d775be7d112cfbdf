package http

import (
	"github.com/gin-gonic/gin"

	"github.com/studentshop/cart-service/internal/service"
)

// CatalogRoutes handles product catalog route registration.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(catalog service.CatalogService) *CatalogRoutes {
	return &CatalogRoutes{handler: NewCatalogHandler(catalog)}
}

// RegisterRoutes registers catalog routes.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/products", r.handler.ListProducts)
	rg.GET("/products/:productID", r.handler.GetProduct)
}
