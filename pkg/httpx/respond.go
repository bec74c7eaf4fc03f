package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/tair/virtual-tryon/pkg/logger"
)

// ErrorBody is the error payload returned by every API route
type ErrorBody struct {
	Message string `json:"message"`
}

// RespondJSON writes data as a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// RespondError writes a {"message": ...} body with the given status
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorBody{Message: message})
}
