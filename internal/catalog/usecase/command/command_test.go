package command

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
	"github.com/tair/virtual-tryon/internal/catalog/repository"
	"github.com/tair/virtual-tryon/internal/catalog/seed"
)

type fixedSource struct {
	categories []string
	products   []seed.ProductSpec
}

func (s fixedSource) Categories() []string         { return s.categories }
func (s fixedSource) Products() []seed.ProductSpec { return s.products }

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newSeeder(source seed.Source, categories domain.CategoryRepository, products domain.ProductRepository) *SeedCatalogHandler {
	return NewSeedCatalogHandler(
		source,
		categories,
		NewCreateCategoryHandler(categories),
		NewCreateProductHandler(products, categories),
	)
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	ctx := context.Background()
	categories := repository.NewMemoryCategoryRepository()
	products := repository.NewMemoryProductRepository()
	h := NewCreateProductHandler(products, categories)

	cmd := CreateProductCommand{
		Name:       "Sport Max",
		Price:      decimal.RequireFromString("119.99"),
		Rating:     decimal.RequireFromString("4.5"),
		CategoryID: 7,
		ImageURL:   "https://images.example.com/sport.jpg",
		ModelURL:   "/models/sport_max.glb",
	}

	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	cmd.Name = ""
	_, err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateCategoryRejectsBlankName(t *testing.T) {
	h := NewCreateCategoryHandler(repository.NewMemoryCategoryRepository())

	_, err := h.Handle(context.Background(), CreateCategoryCommand{Name: "   "})
	assert.Error(t, err)

	c, err := h.Handle(context.Background(), CreateCategoryCommand{Name: " Sport "})
	require.NoError(t, err)
	assert.Equal(t, "Sport", c.Name)
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the full dataset once", func(t *testing.T) {
		categories := repository.NewMemoryCategoryRepository()
		products := repository.NewMemoryProductRepository()
		h := newSeeder(seed.Static{}, categories, products)

		result, err := h.Handle(ctx, SeedCatalogCommand{})
		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, len(seed.Categories), result.Categories)
		assert.Equal(t, len(seed.Products), result.Products)

		again, err := h.Handle(ctx, SeedCatalogCommand{})
		require.NoError(t, err)
		assert.True(t, again.Skipped)

		count, err := products.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(len(seed.Products)), count)
	})

	t.Run("every product references an existing category", func(t *testing.T) {
		categories := repository.NewMemoryCategoryRepository()
		products := repository.NewMemoryProductRepository()
		_, err := newSeeder(seed.Static{}, categories, products).Handle(ctx, SeedCatalogCommand{})
		require.NoError(t, err)

		all, err := products.FindAll(ctx)
		require.NoError(t, err)
		for _, p := range all {
			_, err := categories.FindByID(ctx, p.CategoryID)
			assert.NoError(t, err, p.Name)
		}
	})

	t.Run("unknown category name aborts", func(t *testing.T) {
		source := fixedSource{
			categories: []string{"Running"},
			products:   []seed.ProductSpec{{Name: "Orphan", Price: "1", Rating: "1", Category: "Golf", Image: "x", Model: "/m.glb"}},
		}
		_, err := newSeeder(source, repository.NewMemoryCategoryRepository(), repository.NewMemoryProductRepository()).
			Handle(ctx, SeedCatalogCommand{})
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("count failure is returned", func(t *testing.T) {
		categories := new(mockCategoryRepository)
		categories.On("Count", mock.Anything).Return(int64(0), errors.New("connection reset"))

		_, err := newSeeder(seed.Static{}, categories, repository.NewMemoryProductRepository()).
			Handle(ctx, SeedCatalogCommand{})
		assert.ErrorContains(t, err, "connection reset")
		categories.AssertExpectations(t)
	})
}
