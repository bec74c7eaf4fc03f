package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/virtual-tryon/docs"
	catalogHTTP "github.com/tair/virtual-tryon/internal/catalog/delivery/http"
	"github.com/tair/virtual-tryon/internal/config"
	"github.com/tair/virtual-tryon/internal/favorites"
	favdomain "github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/kafka"
	"github.com/tair/virtual-tryon/pkg/httpcache"
	"github.com/tair/virtual-tryon/pkg/httpx"
	"github.com/tair/virtual-tryon/pkg/logger"
	"github.com/tair/virtual-tryon/pkg/middleware"
	"github.com/tair/virtual-tryon/pkg/ratelimit"
	"github.com/tair/virtual-tryon/pkg/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog and favorites HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// apiDeps is everything the HTTP API is built from
type apiDeps struct {
	backend  *backend
	events   favdomain.EventPublisher
	cache    *redis.Client
	cacheTTL time.Duration
	limits   config.LimitsConfig
	registry *prometheus.Registry
	service  string
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.App.Name, Version, cfg.Tracing.Endpoint)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			defer func() {
				if err := tracing.Shutdown(context.Background(), tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	be, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer be.close()

	deps := apiDeps{
		backend:  be,
		cacheTTL: cfg.Redis.TTL,
		limits:   cfg.Limits,
		registry: newRegistry(),
		service:  cfg.App.Name,
	}

	if cfg.Redis.Addr != "" {
		deps.cache = openCache(ctx, cfg.Redis)
		if deps.cache != nil {
			defer deps.cache.Close()
		}
	}

	// a nil *kafka.Publisher must not end up inside the interface
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, favorite events disabled")
		} else {
			deps.events = publisher
			defer publisher.Close()
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           newAPIHandler(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTP.Port).
			Str("metrics", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openCache connects the response cache and drops responses cached before
// this process seeded the catalog. It returns nil when Redis is unreachable.
func openCache(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unavailable, response cache disabled")
		_ = client.Close()
		return nil
	}
	if err := httpcache.Invalidate(ctx, client); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to invalidate response cache")
	}
	return client
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// newAPIHandler builds the router with catalog, favorites, metrics, health
// and documentation routes
func newAPIHandler(deps apiDeps) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Recover, middleware.Logging, middleware.Tracing(deps.service))

	metrics := middleware.NewHTTPMetrics(deps.registry)

	cacheCfg := httpcache.DefaultConfig()
	if deps.cacheTTL > 0 {
		cacheCfg.TTL = deps.cacheTTL
	}
	catalogRouter := router.NewRoute().Subrouter()
	catalogRouter.Use(httpcache.Middleware(deps.cache, cacheCfg))
	catalogHTTP.NewCatalogHandler(deps.backend.catalog, metrics, deps.registry).RegisterRoutes(catalogRouter)

	favoritesRouter := router.NewRoute().Subrouter()
	if deps.cache != nil && deps.limits.FavoriteWrites > 0 {
		limiter := ratelimit.New(deps.cache, deps.limits.FavoriteWrites, deps.limits.Window)
		favoritesRouter.Use(ratelimit.WritesOnly(limiter.Middleware))
	}
	favorites.InitializeHTTPHandler(
		deps.backend.favorites,
		deps.events,
		deps.backend.catalog,
		deps.backend.demoUser,
		metrics,
	).RegisterRoutes(favoritesRouter)

	router.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{Registry: deps.registry}))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	catalogHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(router)
}
