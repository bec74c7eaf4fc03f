package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, max int) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, max, time.Minute), mr
}

func TestMiddlewareLimitsPerClient(t *testing.T) {
	limiter, _ := newLimiter(t, 2)
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/favorites", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := send("10.0.0.1:5555")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusCreated, send("10.0.0.1:5556").Code)

	blocked := send("10.0.0.1:5557")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "Too many requests")
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, send("10.0.0.2:5555").Code, "other clients have their own window")
}

func TestAllowSlidesWindow(t *testing.T) {
	limiter, _ := newLimiter(t, 1)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ok, _, _, err := limiter.Allow(t.Context(), "c")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(30 * time.Second)
	ok, _, _, err = limiter.Allow(t.Context(), "c")
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _, _, err = limiter.Allow(t.Context(), "c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMiddlewareFailsOpen(t *testing.T) {
	limiter, mr := newLimiter(t, 1)
	mr.Close()

	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/favorites/1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var nilLimiter *Limiter
	rec = httptest.NewRecorder()
	nilLimiter.Middleware(h).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWritesOnlySkipsReads(t *testing.T) {
	limiter, _ := newLimiter(t, 1)
	h := WritesOnly(limiter.Middleware)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/favorites", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/favorites", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/favorites", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
