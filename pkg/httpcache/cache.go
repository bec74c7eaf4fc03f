package httpcache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/virtual-tryon/pkg/logger"
)

// KeyPrefix namespaces every cached response
const KeyPrefix = "tryon:cache:"

// Config holds cache configuration
type Config struct {
	TTL              time.Duration
	CacheableMethods []string
	CacheableStatus  []int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		TTL:              5 * time.Minute,
		CacheableMethods: []string{http.MethodGet, http.MethodHead},
		CacheableStatus:  []int{http.StatusOK},
	}
}

// Middleware caches response bodies in Redis. A nil client disables caching.
func Middleware(client *redis.Client, cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(cfg.CacheableMethods, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cacheKey := Key(r)

			cached, err := client.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Debug(ctx).
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(cached)
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn(ctx).Err(err).Msg("Cache lookup failed")
			}

			rec := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			rec.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if !slices.Contains(cfg.CacheableStatus, rec.statusCode) {
				return
			}

			if err := client.Set(ctx, cacheKey, rec.body.Bytes(), cfg.TTL).Err(); err != nil {
				logger.Warn(ctx).
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
				return
			}

			logger.Debug(ctx).
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Dur("ttl", cfg.TTL).
				Int("size", rec.body.Len()).
				Msg("Response cached")
		})
	}
}

// Key generates the cache key for a request from its method, path and query
func Key(r *http.Request) string {
	components := fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)
	hash := sha256.Sum256([]byte(components))
	return KeyPrefix + hex.EncodeToString(hash[:])
}

// Invalidate removes every cached response. The catalog is reseeded on every
// start, so responses cached by a previous process must not be served.
func Invalidate(ctx context.Context, client *redis.Client) error {
	iter := client.Scan(ctx, 0, KeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		return err
	}

	logger.Info(ctx).Int("count", len(keys)).Msg("Cache invalidated")
	return nil
}

type bodyRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
