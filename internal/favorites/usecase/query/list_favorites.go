package query

import (
	"context"
	"errors"
	"fmt"

	catalog "github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// ProductResolver looks up catalog products by id
type ProductResolver interface {
	GetProduct(ctx context.Context, id uint) (*catalog.Product, error)
}

// ListFavoritesQuery represents the query to list a user's favorite products
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles list favorites query
type ListFavoritesHandler struct {
	repo     domain.FavoriteRepository
	products ProductResolver
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository, products ProductResolver) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo, products: products}
}

// Handle returns the full product records of the user's favorites. Favorites
// whose product no longer resolves are skipped.
func (h *ListFavoritesHandler) Handle(ctx context.Context, query ListFavoritesQuery) ([]catalog.Product, error) {
	favorites, err := h.repo.ListByUser(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	products := make([]catalog.Product, 0, len(favorites))
	for _, f := range favorites {
		product, err := h.products.GetProduct(ctx, f.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			logger.Debug(ctx).Uint("product_id", f.ProductID).Msg("Skipping unresolved favorite")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", f.ProductID, err)
		}
		products = append(products, *product)
	}

	return products, nil
}
