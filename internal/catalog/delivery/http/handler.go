package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/usecase"
	"github.com/tair/virtual-tryon/pkg/httpx"
	"github.com/tair/virtual-tryon/pkg/logger"
	"github.com/tair/virtual-tryon/pkg/middleware"
)

// CatalogHandler handles HTTP requests for categories and products
type CatalogHandler struct {
	service       *usecase.Service
	metrics       *middleware.HTTPMetrics
	totalProducts prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *usecase.Service, metrics *middleware.HTTPMetrics, reg prometheus.Registerer) *CatalogHandler {
	totalProducts := promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "tryon_catalog_products_total",
		Help: "Total number of products in the catalog",
	})

	return &CatalogHandler{
		service:       service,
		metrics:       metrics,
		totalProducts: totalProducts,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.metrics.Wrap("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/products", h.metrics.Wrap("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metrics.Wrap("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/search", h.metrics.Wrap("/api/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products/search/{query}", h.metrics.Wrap("/api/products/search/{query}", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id:[0-9]+}", h.metrics.Wrap("/api/products/{id}", h.GetProduct)).Methods("GET")
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, categories)
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *uint
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		cid := uint(id)
		categoryID = &cid
	}

	products, err := h.service.ListProducts(r.Context(), categoryID)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if categoryID == nil {
		h.totalProducts.Set(float64(len(products)))
	}
	httpx.RespondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.GetProduct(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error(r.Context()).Err(err).Uint64("product_id", id).Msg("Failed to get product")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, product)
}

// SearchProducts handles GET /api/products/search/{query} and GET /api/products/search?q=
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	term, ok := mux.Vars(r)["query"]
	if !ok {
		term = r.URL.Query().Get("q")
	}

	products, err := h.service.SearchProducts(r.Context(), term)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("query", term).Msg("Failed to search products")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to search products")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, products)
}

// GetStats handles GET /api/products/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get catalog stats")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	h.totalProducts.Set(float64(stats.TotalProducts))
	httpx.RespondJSON(w, http.StatusOK, stats)
}
