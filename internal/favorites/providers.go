package favorites

import (
	"gorm.io/gorm"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/internal/favorites/repository"
)

// NewMemoryRepository provides a process-memory favorites store
func NewMemoryRepository() domain.FavoriteRepository {
	return repository.NewMemoryFavoriteRepository()
}

// NewGormRepository provides a database-backed favorites store and migrates its table
func NewGormRepository(db *gorm.DB) (domain.FavoriteRepository, error) {
	if err := repository.AutoMigrate(db); err != nil {
		return nil, err
	}
	return repository.NewGormFavoriteRepository(db), nil
}
