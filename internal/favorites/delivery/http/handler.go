package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/virtual-tryon/internal/favorites/domain"
	"github.com/tair/virtual-tryon/internal/favorites/usecase/command"
	"github.com/tair/virtual-tryon/internal/favorites/usecase/query"
	"github.com/tair/virtual-tryon/pkg/httpx"
	"github.com/tair/virtual-tryon/pkg/logger"
	"github.com/tair/virtual-tryon/pkg/middleware"
)

// FavoritesHandler handles HTTP requests for the favorites of the demo identity
type FavoritesHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler
	checkHandler  *query.CheckFavoriteHandler

	userID  uint
	metrics *middleware.HTTPMetrics
}

// NewFavoritesHandler creates a new favorites handler acting for userID
func NewFavoritesHandler(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
	checkHandler *query.CheckFavoriteHandler,
	userID uint,
	metrics *middleware.HTTPMetrics,
) *FavoritesHandler {
	return &FavoritesHandler{
		addHandler:    addHandler,
		removeHandler: removeHandler,
		listHandler:   listHandler,
		checkHandler:  checkHandler,
		userID:        userID,
		metrics:       metrics,
	}
}

func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.metrics.Wrap("/api/favorites", h.ListFavorites)).Methods("GET")
	router.HandleFunc("/api/favorites", h.metrics.Wrap("/api/favorites", h.AddFavorite)).Methods("POST")
	router.HandleFunc("/api/favorites/check", h.metrics.Wrap("/api/favorites/check", h.CheckFavorite)).Methods("GET")
	router.HandleFunc("/api/favorites/{productId:[0-9]+}", h.metrics.Wrap("/api/favorites/{productId}", h.RemoveFavorite)).Methods("DELETE")
}

// productID accepts a JSON number or a numeric string
type productID uint

func (p *productID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}
	id, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return err
	}
	*p = productID(id)
	return nil
}

// ListFavorites handles GET /api/favorites
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: h.userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list favorites")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, products)
}

// AddFavorite handles POST /api/favorites
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID productID `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	favorite, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		UserID:    h.userID,
		ProductID: uint(req.ProductID),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFavorite) {
			httpx.RespondError(w, http.StatusBadRequest, "Product ID is required")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to add favorite")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /api/favorites/{productId}
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["productId"], 10, 32)
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		UserID:    h.userID,
		ProductID: uint(id),
	}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove favorite")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckFavorite handles GET /api/favorites/check?productId=
func (h *FavoritesHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.URL.Query().Get("productId"), 10, 32)
	if err != nil || id == 0 {
		httpx.RespondError(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	ok, err := h.checkHandler.Handle(r.Context(), query.CheckFavoriteQuery{UserID: h.userID, ProductID: uint(id)})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to check favorite")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to check favorite")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]bool{"isFavorite": ok})
}
