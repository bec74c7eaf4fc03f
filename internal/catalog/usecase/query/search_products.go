package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// SearchProductsQuery represents a substring search over name and description
type SearchProductsQuery struct {
	Term string
}

// SearchProductsHandler handles search products query
type SearchProductsHandler struct {
	repo     domain.ProductRepository
	fallback bool
}

// NewSearchProductsHandler creates a search handler. With fallback set, a
// search without matches returns the full catalog instead of an empty list.
func NewSearchProductsHandler(repo domain.ProductRepository, fallback bool) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo, fallback: fallback}
}

// Handle executes the search products query
func (h *SearchProductsHandler) Handle(ctx context.Context, query SearchProductsQuery) ([]domain.Product, error) {
	term := strings.ToLower(strings.TrimSpace(query.Term))

	products, err := h.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	if len(products) == 0 && h.fallback {
		products, err = h.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
	}

	return products, nil
}
