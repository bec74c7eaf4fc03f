package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
)

func newGormRepository(t *testing.T) domain.FavoriteRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return NewGormFavoriteRepository(db)
}

func TestFavoriteRepositories(t *testing.T) {
	backends := map[string]func(t *testing.T) domain.FavoriteRepository{
		"memory": func(*testing.T) domain.FavoriteRepository { return NewMemoryFavoriteRepository() },
		"gorm":   newGormRepository,
	}

	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			first, created, err := repo.Add(ctx, 1, 10)
			require.NoError(t, err)
			assert.True(t, created)

			again, created, err := repo.Add(ctx, 1, 10)
			require.NoError(t, err)
			assert.False(t, created)
			assert.Equal(t, first.ID, again.ID)

			_, _, err = repo.Add(ctx, 1, 11)
			require.NoError(t, err)
			_, _, err = repo.Add(ctx, 2, 10)
			require.NoError(t, err)

			list, err := repo.ListByUser(ctx, 1)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, uint(10), list[0].ProductID)
			assert.Equal(t, uint(11), list[1].ProductID)

			ok, err := repo.Exists(ctx, 2, 10)
			require.NoError(t, err)
			assert.True(t, ok)

			removed, err := repo.Remove(ctx, 1, 10)
			require.NoError(t, err)
			assert.True(t, removed)

			removed, err = repo.Remove(ctx, 1, 10)
			require.NoError(t, err)
			assert.False(t, removed)

			ok, err = repo.Exists(ctx, 1, 10)
			require.NoError(t, err)
			assert.False(t, ok)

			list, err = repo.ListByUser(ctx, 1)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, uint(11), list[0].ProductID)
		})
	}
}
