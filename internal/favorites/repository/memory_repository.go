package repository

import (
	"context"
	"sync"
	"time"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
)

type pair struct {
	userID, productID uint
}

// MemoryFavoriteRepository keeps favorites in process memory
type MemoryFavoriteRepository struct {
	mu        sync.RWMutex
	nextID    uint
	favorites []domain.Favorite
	index     map[pair]uint
}

func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{nextID: 1, index: make(map[pair]uint)}
}

func (r *MemoryFavoriteRepository) Add(_ context.Context, userID, productID uint) (*domain.Favorite, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{userID, productID}
	if id, ok := r.index[key]; ok {
		for _, f := range r.favorites {
			if f.ID == id {
				return &f, false, nil
			}
		}
	}

	f := domain.Favorite{
		ID:        r.nextID,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.favorites = append(r.favorites, f)
	r.index[key] = f.ID
	return &f, true, nil
}

func (r *MemoryFavoriteRepository) Remove(_ context.Context, userID, productID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{userID, productID}
	id, ok := r.index[key]
	if !ok {
		return false, nil
	}
	delete(r.index, key)

	for i, f := range r.favorites {
		if f.ID == id {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *MemoryFavoriteRepository) ListByUser(_ context.Context, userID uint) ([]domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Favorite, 0)
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *MemoryFavoriteRepository) Exists(_ context.Context, userID, productID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[pair{userID, productID}]
	return ok, nil
}
