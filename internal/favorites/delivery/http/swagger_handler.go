package http

// ListFavorites godoc
// @Summary List favorites
// @Description Get the demo user's favorite products
// @Tags Favorites
// @Produce json
// @Success 200 {array} catalog.Product
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/favorites [get]
func (h *FavoritesHandler) ListFavoritesDoc() {}

// AddFavorite godoc
// @Summary Add favorite
// @Description Mark a product as favorite. Adding an existing favorite returns the stored record.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body object{productId=int} true "Product to favorite"
// @Success 201 {object} domain.Favorite
// @Failure 400 {object} httpx.ErrorBody
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/favorites [post]
func (h *FavoritesHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Remove favorite
// @Description Unmark a favorite product. Removing an absent favorite succeeds.
// @Tags Favorites
// @Param productId path int true "Product ID"
// @Success 204
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/favorites/{productId} [delete]
func (h *FavoritesHandler) RemoveFavoriteDoc() {}

// CheckFavorite godoc
// @Summary Check favorite
// @Description Report whether a product is among the demo user's favorites
// @Tags Favorites
// @Produce json
// @Param productId query int true "Product ID"
// @Success 200 {object} object{isFavorite=bool}
// @Failure 400 {object} httpx.ErrorBody
// @Router /api/favorites/check [get]
func (h *FavoritesHandler) CheckFavoriteDoc() {}
