//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"

	"github.com/tair/virtual-tryon/internal/favorites/delivery/http"
	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/internal/favorites/usecase/command"
	"github.com/tair/virtual-tryon/internal/favorites/usecase/query"
	"github.com/tair/virtual-tryon/pkg/middleware"
)

// Wire sets
var CommandHandlerSet = wire.NewSet(
	command.NewAddFavoriteHandler,
	command.NewRemoveFavoriteHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListFavoritesHandler,
	query.NewCheckFavoriteHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	repo domain.FavoriteRepository,
	events domain.EventPublisher,
	products query.ProductResolver,
	userID uint,
	metrics *middleware.HTTPMetrics,
) *http.FavoritesHandler {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewFavoritesHandler,
	)
	return nil
}
