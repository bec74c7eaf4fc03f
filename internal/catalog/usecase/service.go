package usecase

import (
	"context"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/usecase/command"
	"github.com/tair/virtual-tryon/internal/catalog/usecase/query"
)

// Service is the catalog facade used by the API layer, the favorites context
// and the try-on tooling. It is read-only apart from seeding.
type Service struct {
	listProducts   *query.ListProductsHandler
	getProduct     *query.GetProductHandler
	searchProducts *query.SearchProductsHandler
	listCategories *query.ListCategoriesHandler
	getStats       *query.GetStatsHandler
	seedCatalog    *command.SeedCatalogHandler
}

// NewService creates the catalog facade
func NewService(
	listProducts *query.ListProductsHandler,
	getProduct *query.GetProductHandler,
	searchProducts *query.SearchProductsHandler,
	listCategories *query.ListCategoriesHandler,
	getStats *query.GetStatsHandler,
	seedCatalog *command.SeedCatalogHandler,
) *Service {
	return &Service{
		listProducts:   listProducts,
		getProduct:     getProduct,
		searchProducts: searchProducts,
		listCategories: listCategories,
		getStats:       getStats,
		seedCatalog:    seedCatalog,
	}
}

// ListProducts returns all products, or those of one category when categoryID is set
func (s *Service) ListProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error) {
	return s.listProducts.Handle(ctx, query.ListProductsQuery{CategoryID: categoryID})
}

// GetProduct returns a single product or domain.ErrNotFound
func (s *Service) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.getProduct.Handle(ctx, query.GetProductQuery{ID: id})
}

// SearchProducts runs a case-insensitive substring search
func (s *Service) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	return s.searchProducts.Handle(ctx, query.SearchProductsQuery{Term: term})
}

// ListCategories returns the category set
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.listCategories.Handle(ctx, query.ListCategoriesQuery{})
}

// Stats returns catalog statistics
func (s *Service) Stats(ctx context.Context) (*query.CatalogStats, error) {
	return s.getStats.Handle(ctx, query.GetStatsQuery{})
}

// Seed populates an empty catalog from the configured source
func (s *Service) Seed(ctx context.Context) (*command.SeedResult, error) {
	return s.seedCatalog.Handle(ctx, command.SeedCatalogCommand{})
}
