package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/virtual-tryon/internal/user/domain"
)

// GormUserRepository stores users through GORM
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// AutoMigrate creates the users table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{})
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.FindByUsername(ctx, user.Username); err == nil {
		return domain.ErrUsernameTaken
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
