package command

import (
	"context"
	"fmt"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/seed"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// SeedCatalogCommand represents the command to populate an empty catalog
type SeedCatalogCommand struct{}

// SeedResult reports what a seeding run created
type SeedResult struct {
	Skipped    bool
	Categories int
	Products   int
}

// SeedCatalogHandler handles catalog seeding
type SeedCatalogHandler struct {
	source         seed.Source
	categories     domain.CategoryRepository
	createCategory *CreateCategoryHandler
	createProduct  *CreateProductHandler
}

// NewSeedCatalogHandler creates a new seed catalog handler
func NewSeedCatalogHandler(
	source seed.Source,
	categories domain.CategoryRepository,
	createCategory *CreateCategoryHandler,
	createProduct *CreateProductHandler,
) *SeedCatalogHandler {
	return &SeedCatalogHandler{
		source:         source,
		categories:     categories,
		createCategory: createCategory,
		createProduct:  createProduct,
	}
}

// Handle seeds categories then products. It does nothing when any category
// already exists.
func (h *SeedCatalogHandler) Handle(ctx context.Context, _ SeedCatalogCommand) (*SeedResult, error) {
	count, err := h.categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		logger.Info(ctx).Int64("categories", count).Msg("Catalog already seeded, skipping")
		return &SeedResult{Skipped: true}, nil
	}

	ids := make(map[string]uint)
	for _, name := range h.source.Categories() {
		category, err := h.createCategory.Handle(ctx, CreateCategoryCommand{Name: name})
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", name, err)
		}
		ids[category.Name] = category.ID
	}

	result := &SeedResult{Categories: len(ids)}
	for _, spec := range h.source.Products() {
		categoryID, ok := ids[spec.Category]
		if !ok {
			return nil, fmt.Errorf("seed product %q: %w: %s", spec.Name, domain.ErrCategoryNotFound, spec.Category)
		}

		p := spec.Product(categoryID)
		_, err := h.createProduct.Handle(ctx, CreateProductCommand{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Rating:      p.Rating,
			CategoryID:  p.CategoryID,
			ImageURL:    p.ImageURL,
			ModelURL:    p.ModelURL,
		})
		if err != nil {
			return nil, fmt.Errorf("seed product %q: %w", spec.Name, err)
		}
		result.Products++
	}

	logger.Info(ctx).
		Int("categories", result.Categories).
		Int("products", result.Products).
		Msg("Catalog seeded")
	return result, nil
}
