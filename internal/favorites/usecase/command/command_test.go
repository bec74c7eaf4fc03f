package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/internal/favorites/repository"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishFavoriteAdded(ctx context.Context, userID, productID, favoriteID uint) error {
	return m.Called(ctx, userID, productID, favoriteID).Error(0)
}

func (m *mockPublisher) PublishFavoriteRemoved(ctx context.Context, userID, productID uint) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryFavoriteRepository()
	events := new(mockPublisher)
	events.On("PublishFavoriteAdded", mock.Anything, uint(1), uint(5), uint(1)).Return(nil).Once()

	h := NewAddFavoriteHandler(repo, events)

	first, err := h.Handle(ctx, AddFavoriteCommand{UserID: 1, ProductID: 5})
	require.NoError(t, err)
	second, err := h.Handle(ctx, AddFavoriteCommand{UserID: 1, ProductID: 5})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	events.AssertExpectations(t)
}

func TestAddFavoriteValidation(t *testing.T) {
	h := NewAddFavoriteHandler(repository.NewMemoryFavoriteRepository(), nil)

	_, err := h.Handle(context.Background(), AddFavoriteCommand{UserID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidFavorite)
}

func TestAddFavoriteSurvivesPublishFailure(t *testing.T) {
	events := new(mockPublisher)
	events.On("PublishFavoriteAdded", mock.Anything, uint(1), uint(5), mock.Anything).Return(errors.New("broker down"))

	fav, err := NewAddFavoriteHandler(repository.NewMemoryFavoriteRepository(), events).
		Handle(context.Background(), AddFavoriteCommand{UserID: 1, ProductID: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(5), fav.ProductID)
}

func TestRemoveFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and publishes", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		_, _, err := repo.Add(ctx, 1, 5)
		require.NoError(t, err)

		events := new(mockPublisher)
		events.On("PublishFavoriteRemoved", mock.Anything, uint(1), uint(5)).Return(nil).Once()

		require.NoError(t, NewRemoveFavoriteHandler(repo, events).Handle(ctx, RemoveFavoriteCommand{UserID: 1, ProductID: 5}))

		ok, err := repo.Exists(ctx, 1, 5)
		require.NoError(t, err)
		assert.False(t, ok)
		events.AssertExpectations(t)
	})

	t.Run("absent pair is a silent no-op", func(t *testing.T) {
		repo := repository.NewMemoryFavoriteRepository()
		_, _, err := repo.Add(ctx, 1, 6)
		require.NoError(t, err)

		events := new(mockPublisher)
		require.NoError(t, NewRemoveFavoriteHandler(repo, events).Handle(ctx, RemoveFavoriteCommand{UserID: 1, ProductID: 5}))

		list, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		events.AssertNotCalled(t, "PublishFavoriteRemoved", mock.Anything, mock.Anything, mock.Anything)
	})
}
