package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/virtual-tryon/internal/catalog"
	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/seed"
	"github.com/tair/virtual-tryon/pkg/middleware"
)

func newTestRouter(t *testing.T) (*mux.Router, *CatalogHandler) {
	t.Helper()
	stores := catalog.NewMemoryStores()
	svc := catalog.InitializeService(stores.Products, stores.Categories, seed.Static{}, catalog.Options{})
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	h := NewCatalogHandler(svc, middleware.NewHTTPMetrics(reg), reg)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, h
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []domain.Product {
	t.Helper()
	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	return products
}

func TestListCategories(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 5)
	assert.Equal(t, "Running", categories[0].Name)
}

func TestListProducts(t *testing.T) {
	router, h := newTestRouter(t)

	t.Run("all", func(t *testing.T) {
		rec := get(t, router, "/api/products")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeProducts(t, rec), len(seed.Products))
		assert.Equal(t, float64(len(seed.Products)), testutil.ToFloat64(h.totalProducts))
	})

	t.Run("by category", func(t *testing.T) {
		rec := get(t, router, "/api/products?categoryId=2")
		require.Equal(t, http.StatusOK, rec.Code)
		products := decodeProducts(t, rec)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, uint(2), p.CategoryID)
		}
	})

	t.Run("unknown category is an empty array", func(t *testing.T) {
		rec := get(t, router, "/api/products?categoryId=99")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("malformed category", func(t *testing.T) {
		rec := get(t, router, "/api/products?categoryId=running")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid category ID"}`, rec.Body.String())
	})
}

func TestGetProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/api/products/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Air Cloud Runner", body["name"])
	assert.Equal(t, 129.99, body["price"])
	assert.Equal(t, 4.8, body["rating"])
	assert.Equal(t, "/models/air_cloud_runner.glb", body["modelUrl"])
	assert.EqualValues(t, 1, body["categoryId"])

	rec = get(t, router, "/api/products/404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
}

func TestSearchProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"path form", "/api/products/search/trek", []string{"Alpine Trek"}},
		{"query form", "/api/products/search?q=Urban", []string{"Urban Street Pro", "Urban Chic", "Street Flow"}},
		{"no match", "/api/products/search/sandal", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var names []string
			for _, p := range decodeProducts(t, rec) {
				names = append(names, p.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestGetStats(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/api/products/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 14, stats["totalProducts"])
	assert.EqualValues(t, 5, stats["totalCategories"])
}
