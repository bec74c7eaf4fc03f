package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
)

// GormFavoriteRepository stores favorites through GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// AutoMigrate creates the favorites table and its unique pair index
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Favorite{})
}

func (r *GormFavoriteRepository) Add(ctx context.Context, userID, productID uint) (*domain.Favorite, bool, error) {
	var favorite domain.Favorite
	result := r.db.WithContext(ctx).
		Where(domain.Favorite{UserID: userID, ProductID: productID}).
		FirstOrCreate(&favorite)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &favorite, result.RowsAffected > 0, nil
}

func (r *GormFavoriteRepository) Remove(ctx context.Context, userID, productID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.Favorite{})
	return result.RowsAffected > 0, result.Error
}

func (r *GormFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	return favorites, err
}

func (r *GormFavoriteRepository) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
