package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListCategories godoc
// @Summary List categories
// @Description Get the fixed set of shoe categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Get all products, optionally filtered by category
// @Tags Catalog
// @Produce json
// @Param categoryId query int false "Category filter"
// @Success 200 {array} domain.Product
// @Failure 400 {object} httpx.ErrorBody
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product including its 3D model reference
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} httpx.ErrorBody
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive substring search over product name and description
// @Tags Catalog
// @Produce json
// @Param query path string true "Search term"
// @Success 200 {array} domain.Product
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/products/search/{query} [get]
func (h *CatalogHandler) SearchProductsDoc() {}

// GetStats godoc
// @Summary Get catalog statistics
// @Description Product and category totals, average price and rating
// @Tags Catalog
// @Produce json
// @Success 200 {object} query.CatalogStats
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/products/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}
