package query

import (
	"context"
	"fmt"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
)

// CheckFavoriteQuery asks whether a product is one of the user's favorites
type CheckFavoriteQuery struct {
	UserID    uint
	ProductID uint
}

// CheckFavoriteHandler handles check favorite query
type CheckFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewCheckFavoriteHandler creates a new check favorite handler
func NewCheckFavoriteHandler(repo domain.FavoriteRepository) *CheckFavoriteHandler {
	return &CheckFavoriteHandler{repo: repo}
}

// Handle executes the check favorite query
func (h *CheckFavoriteHandler) Handle(ctx context.Context, query CheckFavoriteQuery) (bool, error) {
	ok, err := h.repo.Exists(ctx, query.UserID, query.ProductID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return ok, nil
}
