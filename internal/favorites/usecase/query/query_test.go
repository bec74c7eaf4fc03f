package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/favorites/repository"
)

type stubResolver map[uint]catalog.Product

func (s stubResolver) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	if id == 13 {
		return nil, errors.New("catalog unavailable")
	}
	p, ok := s[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &p, nil
}

func TestListFavorites(t *testing.T) {
	ctx := context.Background()
	products := stubResolver{
		1: {ID: 1, Name: "Air Cloud Runner"},
		2: {ID: 2, Name: "Urban Street Pro"},
	}

	t.Run("skips unresolved products", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		for _, id := range []uint{2, 99, 1} {
			_, _, err := repo.Add(ctx, 1, id)
			require.NoError(t, err)
		}

		got, err := NewListFavoritesHandler(repo, products).Handle(ctx, ListFavoritesQuery{UserID: 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Urban Street Pro", got[0].Name)
		assert.Equal(t, "Air Cloud Runner", got[1].Name)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		got, err := NewListFavoritesHandler(repository.NewMemoryFavoriteRepository(), products).
			Handle(ctx, ListFavoritesQuery{UserID: 1})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("resolver failures surface", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		_, _, err := repo.Add(ctx, 1, 13)
		require.NoError(t, err)

		_, err = NewListFavoritesHandler(repo, products).Handle(ctx, ListFavoritesQuery{UserID: 1})
		assert.ErrorContains(t, err, "catalog unavailable")
	})
}

func TestCheckFavorite(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryFavoriteRepository()
	_, _, err := repo.Add(ctx, 1, 4)
	require.NoError(t, err)

	h := NewCheckFavoriteHandler(repo)

	ok, err := h.Handle(ctx, CheckFavoriteQuery{UserID: 1, ProductID: 4})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Handle(ctx, CheckFavoriteQuery{UserID: 2, ProductID: 4})
	require.NoError(t, err)
	assert.False(t, ok)
}
