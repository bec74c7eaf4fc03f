package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Rating      decimal.Decimal
	CategoryID  uint
	ImageURL    string
	ModelURL    string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(products domain.ProductRepository, categories domain.CategoryRepository) *CreateProductHandler {
	return &CreateProductHandler{products: products, categories: categories}
}

// Handle executes the create product command. The referenced category must
// already exist.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:        cmd.Name,
		Price:       cmd.Price,
		Description: cmd.Description,
		Rating:      cmd.Rating,
		CategoryID:  cmd.CategoryID,
		ImageURL:    cmd.ImageURL,
		ModelURL:    cmd.ModelURL,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.categories.FindByID(ctx, cmd.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrCategoryNotFound, cmd.CategoryID)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	if err := h.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
