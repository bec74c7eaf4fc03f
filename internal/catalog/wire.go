//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/seed"
	"github.com/tair/virtual-tryon/internal/catalog/usecase"
	"github.com/tair/virtual-tryon/internal/catalog/usecase/command"
	"github.com/tair/virtual-tryon/internal/catalog/usecase/query"
)

// Wire sets
var CommandHandlerSet = wire.NewSet(
	command.NewCreateCategoryHandler,
	command.NewCreateProductHandler,
	command.NewSeedCatalogHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListProductsHandler,
	query.NewGetProductHandler,
	ProvideSearchProductsHandler,
	query.NewListCategoriesHandler,
	query.NewGetStatsHandler,
)

// InitializeService initializes the catalog facade with all dependencies
func InitializeService(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	source seed.Source,
	opts Options,
) *usecase.Service {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		usecase.NewService,
	)
	return nil
}
