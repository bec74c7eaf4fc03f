package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// MemoryCategoryRepository keeps categories in process memory
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	nextID     uint
	categories []domain.Category
	byID       map[uint]int
}

func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{nextID: 1, byID: make(map[uint]int)}
}

func (r *MemoryCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCategory, category.Name)
		}
	}

	category.ID = r.nextID
	r.nextID++
	r.byID[category.ID] = len(r.categories)
	r.categories = append(r.categories, *category)
	return nil
}

func (r *MemoryCategoryRepository) FindByID(_ context.Context, id uint) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := r.categories[idx]
	return &c, nil
}

func (r *MemoryCategoryRepository) FindByName(_ context.Context, name string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryCategoryRepository) FindAll(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MemoryCategoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.categories)), nil
}

// MemoryProductRepository keeps products in process memory, in insertion order
type MemoryProductRepository struct {
	mu       sync.RWMutex
	nextID   uint
	products []domain.Product
	byID     map[uint]int
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{nextID: 1, byID: make(map[uint]int)}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.byID[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[idx]
	return &p, nil
}

func (r *MemoryProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	return r.filter(func(*domain.Product) bool { return true }), nil
}

func (r *MemoryProductRepository) FindByCategory(_ context.Context, categoryID uint) ([]domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *MemoryProductRepository) Search(_ context.Context, term string) ([]domain.Product, error) {
	term = strings.ToLower(term)
	return r.filter(func(p *domain.Product) bool { return p.Matches(term) }), nil
}

func (r *MemoryProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) filter(keep func(*domain.Product) bool) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for i := range r.products {
		if keep(&r.products[i]) {
			out = append(out, r.products[i])
		}
	}
	return out
}
