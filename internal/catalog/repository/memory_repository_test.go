package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

func shoe(name, description string, categoryID uint) *domain.Product {
	return &domain.Product{
		Name:        name,
		Price:       decimal.RequireFromString("99.99"),
		Description: description,
		Rating:      decimal.RequireFromString("4.5"),
		CategoryID:  categoryID,
		ImageURL:    "https://images.example.com/" + name + ".jpg",
		ModelURL:    "/models/" + name + ".glb",
	}
}

func TestMemoryCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCategoryRepository()

	running := &domain.Category{Name: "Running"}
	casual := &domain.Category{Name: "Casual"}
	require.NoError(t, repo.Create(ctx, running))
	require.NoError(t, repo.Create(ctx, casual))

	assert.Equal(t, uint(1), running.ID)
	assert.Equal(t, uint(2), casual.ID)

	t.Run("rejects duplicate names", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Category{Name: "Running"})
		assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
	})

	t.Run("finds by id and name", func(t *testing.T) {
		c, err := repo.FindByID(ctx, casual.ID)
		require.NoError(t, err)
		assert.Equal(t, "Casual", c.Name)

		c, err = repo.FindByName(ctx, "Running")
		require.NoError(t, err)
		assert.Equal(t, running.ID, c.ID)

		_, err = repo.FindByName(ctx, "Hiking")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Running", all[0].Name)
		assert.Equal(t, "Casual", all[1].Name)
	})
}

func TestMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	require.NoError(t, repo.Create(ctx, shoe("Flex Runner", "Running shoes with flex technology", 1)))
	require.NoError(t, repo.Create(ctx, shoe("City Walker", "Comfortable casual shoes", 2)))
	require.NoError(t, repo.Create(ctx, shoe("Velocity X", "Premium running shoes", 1)))

	t.Run("find by id", func(t *testing.T) {
		p, err := repo.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "City Walker", p.Name)

		_, err = repo.FindByID(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("filter by category keeps insertion order", func(t *testing.T) {
		running, err := repo.FindByCategory(ctx, 1)
		require.NoError(t, err)
		require.Len(t, running, 2)
		assert.Equal(t, "Flex Runner", running[0].Name)
		assert.Equal(t, "Velocity X", running[1].Name)

		none, err := repo.FindByCategory(ctx, 9)
		require.NoError(t, err)
		assert.Empty(t, none)
		assert.NotNil(t, none)
	})

	t.Run("search is case insensitive over name and description", func(t *testing.T) {
		got, err := repo.Search(ctx, "RUNNING")
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repo.Search(ctx, "walker")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "City Walker", got[0].Name)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		p, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		p.Name = "mutated"

		again, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Flex Runner", again.Name)
	})

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
