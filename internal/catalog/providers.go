package catalog

import (
	"gorm.io/gorm"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/repository"
	"github.com/tair/virtual-tryon/internal/catalog/usecase/query"
)

// Options tunes catalog behavior
type Options struct {
	// SearchFallback returns the whole catalog when a search has no matches
	SearchFallback bool
}

// Stores bundles the catalog repositories
type Stores struct {
	Products   domain.ProductRepository
	Categories domain.CategoryRepository
}

// ProvideSearchProductsHandler provides the search handler configured from opts
func ProvideSearchProductsHandler(products domain.ProductRepository, opts Options) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(products, opts.SearchFallback)
}

// NewMemoryStores provides process-memory catalog stores
func NewMemoryStores() Stores {
	return Stores{
		Products:   repository.NewTracedProductRepository(repository.NewMemoryProductRepository()),
		Categories: repository.NewMemoryCategoryRepository(),
	}
}

// NewGormStores provides database-backed catalog stores and migrates their tables
func NewGormStores(db *gorm.DB) (Stores, error) {
	if err := repository.AutoMigrate(db); err != nil {
		return Stores{}, err
	}
	return Stores{
		Products:   repository.NewTracedProductRepository(repository.NewGormProductRepository(db)),
		Categories: repository.NewGormCategoryRepository(db),
	}, nil
}
