package domain

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and ratings are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxRating is the upper bound of the product rating scale
var MaxRating = decimal.NewFromInt(5)

// Product represents a shoe in the catalog together with its 3D model
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Description string          `json:"description"`
	Rating      decimal.Decimal `json:"rating" gorm:"type:numeric(3,2);default:0"`
	CategoryID  uint            `json:"categoryId" gorm:"not null;index"`
	ImageURL    string          `json:"imageUrl" gorm:"not null"`
	ModelURL    string          `json:"modelUrl" gorm:"not null"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Matches reports whether term is a case-insensitive substring of the
// product name or description. term must already be lower-cased.
func (p *Product) Matches(term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// Validate checks the fields every stored product must carry
func (p *Product) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return invalid("product name is required")
	case p.Price.IsNegative():
		return invalid("price cannot be negative")
	case p.Rating.IsNegative() || p.Rating.GreaterThan(MaxRating):
		return invalid("rating must be between 0 and 5")
	case p.CategoryID == 0:
		return invalid("category id is required")
	case p.ImageURL == "":
		return invalid("image url is required")
	case p.ModelURL == "":
		return invalid("model url is required")
	}
	return nil
}

// ProductRepository defines the contract for product data access. FindAll
// and FindByCategory return products in insertion order.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]Product, error)
	Search(ctx context.Context, term string) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}
