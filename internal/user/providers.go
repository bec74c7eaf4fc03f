package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/virtual-tryon/internal/user/domain"
	"github.com/tair/virtual-tryon/internal/user/repository"
	"github.com/tair/virtual-tryon/internal/user/usecase/command"
)

// NewGormRepository provides a database-backed user store and migrates its table
func NewGormRepository(db *gorm.DB) (domain.UserRepository, error) {
	if err := repository.AutoMigrate(db); err != nil {
		return nil, err
	}
	return repository.NewGormUserRepository(db), nil
}

// NewMemoryRepository provides a process-memory user store
func NewMemoryRepository() domain.UserRepository {
	return repository.NewMemoryUserRepository()
}

// EnsureDemoUser returns the id of the demo identity, creating it on first use
func EnsureDemoUser(ctx context.Context, repo domain.UserRepository) (uint, error) {
	u, err := command.NewEnsureDemoUserHandler(repo, command.NewRegisterUserHandler(repo)).Handle(ctx)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}
