package command

import (
	"context"
	"fmt"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// AddFavoriteCommand represents the command to mark a product as favorite
type AddFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// AddFavoriteHandler handles add favorite command
type AddFavoriteHandler struct {
	repo   domain.FavoriteRepository
	events domain.EventPublisher
}

// NewAddFavoriteHandler creates a new add favorite handler. events may be nil.
func NewAddFavoriteHandler(repo domain.FavoriteRepository, events domain.EventPublisher) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo, events: events}
}

// Handle executes the add favorite command. Adding an existing pair returns
// the stored record.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorite, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidFavorite)
	}

	favorite, created, err := h.repo.Add(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	if created && h.events != nil {
		if err := h.events.PublishFavoriteAdded(ctx, favorite.UserID, favorite.ProductID, favorite.ID); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", favorite.ProductID).Msg("Favorite added but event not published")
		}
	}

	return favorite, nil
}
