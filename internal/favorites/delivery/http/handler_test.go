package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/internal/favorites/repository"
	"github.com/tair/virtual-tryon/internal/favorites/usecase/command"
	"github.com/tair/virtual-tryon/internal/favorites/usecase/query"
	"github.com/tair/virtual-tryon/pkg/middleware"
)

const demoUserID = 1

type catalogStub map[uint]catalog.Product

func (c catalogStub) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	p, ok := c[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &p, nil
}

func newTestRouter(t *testing.T) (*mux.Router, domain.FavoriteRepository) {
	t.Helper()
	repo := repository.NewMemoryFavoriteRepository()
	products := catalogStub{
		1: {ID: 1, Name: "Air Cloud Runner"},
		3: {ID: 3, Name: "Flex Runner 2.0"},
	}

	h := NewFavoritesHandler(
		command.NewAddFavoriteHandler(repo, nil),
		command.NewRemoveFavoriteHandler(repo, nil),
		query.NewListFavoritesHandler(repo, products),
		query.NewCheckFavoriteHandler(repo),
		demoUserID,
		middleware.NewHTTPMetrics(prometheus.NewRegistry()),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, repo
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddFavorite(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{"number", `{"productId": 3}`, http.StatusCreated, `{"id":1,"userId":1,"productId":3}`},
		{"numeric string", `{"productId": "3"}`, http.StatusCreated, `{"id":1,"userId":1,"productId":3}`},
		{"missing", `{}`, http.StatusBadRequest, `{"message":"Product ID is required"}`},
		{"zero", `{"productId": 0}`, http.StatusBadRequest, `{"message":"Product ID is required"}`},
		{"garbage", `{"productId": "abc"}`, http.StatusBadRequest, `{"message":"Invalid request body"}`},
		{"not json", `productId=3`, http.StatusBadRequest, `{"message":"Invalid request body"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)
			rec := do(router, http.MethodPost, "/api/favorites", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestFavoritesLifecycle(t *testing.T) {
	router, repo := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/favorites", `{"productId":1}`).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/favorites", `{"productId":1}`).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/favorites", `{"productId":77}`).Code)

	stored, err := repo.ListByUser(context.Background(), demoUserID)
	require.NoError(t, err)
	assert.Len(t, stored, 2, "duplicate add must not create a second record")

	rec := do(router, http.MethodGet, "/api/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1, "unknown product 77 is filtered out")
	assert.Equal(t, "Air Cloud Runner", products[0].Name)

	rec = do(router, http.MethodGet, "/api/favorites/check?productId=1", "")
	assert.JSONEq(t, `{"isFavorite":true}`, rec.Body.String())

	rec = do(router, http.MethodDelete, "/api/favorites/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(router, http.MethodDelete, "/api/favorites/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, http.MethodGet, "/api/favorites/check?productId=1", "")
	assert.JSONEq(t, `{"isFavorite":false}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/api/favorites", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCheckFavoriteRequiresProductID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodGet, "/api/favorites/check", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
