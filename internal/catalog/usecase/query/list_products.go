package query

import (
	"context"
	"fmt"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products. A nil CategoryID
// lists the whole catalog.
type ListProductsQuery struct {
	CategoryID *uint
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	var (
		products []domain.Product
		err      error
	)
	if query.CategoryID != nil {
		products, err = h.repo.FindByCategory(ctx, *query.CategoryID)
	} else {
		products, err = h.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
