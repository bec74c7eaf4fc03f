package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a new category
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category := &domain.Category{Name: name}
	if err := h.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
