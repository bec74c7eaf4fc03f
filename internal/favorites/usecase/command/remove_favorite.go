package command

import (
	"context"
	"fmt"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// RemoveFavoriteCommand represents the command to unmark a favorite product
type RemoveFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// RemoveFavoriteHandler handles remove favorite command
type RemoveFavoriteHandler struct {
	repo   domain.FavoriteRepository
	events domain.EventPublisher
}

// NewRemoveFavoriteHandler creates a new remove favorite handler. events may be nil.
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository, events domain.EventPublisher) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo, events: events}
}

// Handle executes the remove favorite command. Removing an absent pair is not an error.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	removed, err := h.repo.Remove(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if removed && h.events != nil {
		if err := h.events.PublishFavoriteRemoved(ctx, cmd.UserID, cmd.ProductID); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", cmd.ProductID).Msg("Favorite removed but event not published")
		}
	}

	return nil
}
