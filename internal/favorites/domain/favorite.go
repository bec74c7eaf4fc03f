package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidFavorite is returned for malformed favorite requests
var ErrInvalidFavorite = errors.New("invalid favorite")

// Favorite represents a user's favorite product. A (UserID, ProductID) pair
// is stored at most once.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_favorites_user_product"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "user_favorites"
}

// FavoriteRepository defines the contract for user favorites data access
type FavoriteRepository interface {
	// Add stores the pair if absent and reports whether it was created
	Add(ctx context.Context, userID, productID uint) (*Favorite, bool, error)
	// Remove deletes the pair if present and reports whether it existed
	Remove(ctx context.Context, userID, productID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]Favorite, error)
	Exists(ctx context.Context, userID, productID uint) (bool, error)
}

// EventPublisher announces favorite changes to other services
type EventPublisher interface {
	PublishFavoriteAdded(ctx context.Context, userID, productID, favoriteID uint) error
	PublishFavoriteRemoved(ctx context.Context, userID, productID uint) error
}
