package cmd

import (
	"context"
	"fmt"

	"github.com/tair/virtual-tryon/internal/catalog"
	"github.com/tair/virtual-tryon/internal/catalog/seed"
	"github.com/tair/virtual-tryon/internal/catalog/usecase"
	"github.com/tair/virtual-tryon/internal/config"
	"github.com/tair/virtual-tryon/internal/favorites"
	favdomain "github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/internal/user"
	userdomain "github.com/tair/virtual-tryon/internal/user/domain"
	"github.com/tair/virtual-tryon/pkg/database"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// backend is the seeded catalog and the stores behind the API
type backend struct {
	catalog   *usecase.Service
	favorites favdomain.FavoriteRepository
	users     userdomain.UserRepository
	demoUser  uint
	seeded    bool
	close     func() error
}

// openBackend opens the configured storage, seeds an empty catalog and
// makes sure the demo user exists
func openBackend(ctx context.Context, cfg *config.Config) (_ *backend, err error) {
	b := &backend{close: func() error { return nil }}
	defer func() {
		if err != nil {
			_ = b.close()
		}
	}()

	var stores catalog.Stores
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := database.NewGormConnection(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		b.close = sqlDB.Close

		if stores, err = catalog.NewGormStores(db); err != nil {
			return nil, fmt.Errorf("failed to migrate catalog: %w", err)
		}
		if b.favorites, err = favorites.NewGormRepository(db); err != nil {
			return nil, fmt.Errorf("failed to migrate favorites: %w", err)
		}
		if b.users, err = user.NewGormRepository(db); err != nil {
			return nil, fmt.Errorf("failed to migrate users: %w", err)
		}
	default:
		stores = catalog.NewMemoryStores()
		b.favorites = favorites.NewMemoryRepository()
		b.users = user.NewMemoryRepository()
	}

	b.catalog = catalog.InitializeService(stores.Products, stores.Categories, seed.Static{}, catalog.Options{
		SearchFallback: cfg.Catalog.SearchFallback,
	})

	result, err := b.catalog.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	b.seeded = !result.Skipped

	if b.demoUser, err = user.EnsureDemoUser(ctx, b.users); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	logger.Info(ctx).
		Str("storage", cfg.Storage.Driver).
		Bool("seeded", b.seeded).
		Int("categories", result.Categories).
		Int("products", result.Products).
		Uint("demo_user_id", b.demoUser).
		Msg("Backend ready")
	return b, nil
}
