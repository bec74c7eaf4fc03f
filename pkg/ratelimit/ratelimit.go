package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/virtual-tryon/pkg/httpx"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// KeyPrefix namespaces the per-client request windows
const KeyPrefix = "tryon:ratelimit:"

// Limiter is a sliding-window request limiter backed by Redis sorted sets
type Limiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// New creates a limiter allowing maxRequests per window and client
func New(client *redis.Client, maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		redis:       client,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware rejects requests over the limit with 429. A nil limiter or
// client lets everything through; Redis errors fail open.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l == nil || l.redis == nil || l.maxRequests <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		client := clientID(r)

		allowed, remaining, reset, err := l.Allow(ctx, client)
		if err != nil {
			logger.Error(ctx).Err(err).Str("client", client).Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			logger.Warn(ctx).Str("client", client).Int("limit", l.maxRequests).Msg("Rate limit exceeded")
			retry := time.Until(reset).Round(time.Second)
			w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
			httpx.RespondError(w, http.StatusTooManyRequests, fmt.Sprintf("Too many requests. Try again in %v", retry))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Allow records a request from client and reports whether it is within the limit
func (l *Limiter) Allow(ctx context.Context, client string) (bool, int, time.Time, error) {
	key := KeyPrefix + client
	now := l.now()
	windowStart := now.Add(-l.window)

	pipe := l.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	count := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, key, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	used := int(count.Val())
	remaining := max(l.maxRequests-used-1, 0)
	return used < l.maxRequests, remaining, now.Add(l.window), nil
}

// WritesOnly applies mw to every method except GET, HEAD and OPTIONS
func WritesOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				limited.ServeHTTP(w, r)
			}
		})
	}
}

func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
