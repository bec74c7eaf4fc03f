package middleware

import (
	"fmt"
	"net/http"

	"github.com/tair/virtual-tryon/pkg/httpx"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// Recover turns handler panics into a 500 response so the process keeps serving
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context()).
					Str("panic", fmt.Sprint(rec)).
					Str("path", r.URL.Path).
					Msg("Recovered from handler panic")

				httpx.RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
