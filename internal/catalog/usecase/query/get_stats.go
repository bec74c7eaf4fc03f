package query

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats represents catalog statistics
type CatalogStats struct {
	TotalProducts   int64            `json:"totalProducts"`
	TotalCategories int64            `json:"totalCategories"`
	AveragePrice    decimal.Decimal  `json:"averagePrice"`
	AverageRating   decimal.Decimal  `json:"averageRating"`
	ByCategory      map[string]int64 `json:"byCategory"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(products domain.ProductRepository, categories domain.CategoryRepository) *GetStatsHandler {
	return &GetStatsHandler{products: products, categories: categories}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*CatalogStats, error) {
	products, err := h.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	categories, err := h.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	names := make(map[uint]string, len(categories))
	byCategory := make(map[string]int64, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		byCategory[c.Name] = 0
	}

	totalPrice := decimal.Zero
	totalRating := decimal.Zero
	for _, p := range products {
		totalPrice = totalPrice.Add(p.Price)
		totalRating = totalRating.Add(p.Rating)
		if name, ok := names[p.CategoryID]; ok {
			byCategory[name]++
		}
	}

	stats := &CatalogStats{
		TotalProducts:   int64(len(products)),
		TotalCategories: int64(len(categories)),
		AveragePrice:    decimal.Zero,
		AverageRating:   decimal.Zero,
		ByCategory:      byCategory,
	}
	if n := decimal.NewFromInt(int64(len(products))); !n.IsZero() {
		stats.AveragePrice = totalPrice.DivRound(n, 2)
		stats.AverageRating = totalRating.DivRound(n, 2)
	}

	return stats, nil
}
