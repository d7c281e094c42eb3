// Favorite HTTP handlers.
//
// This file exposes REST endpoints for the bookmark relation:
//   - POST /ads/{id}/favorite  (toggle)
//   - GET  /favorites          (list the caller's bookmarked ads)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/utils"
)

// ToggleFavoriteResponse reports the state after a toggle.
type ToggleFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// ToggleFavorite godoc
// @ID          toggleFavorite
// @Summary     Toggle a favorite
// @Description Flips the caller's bookmark on an ad and returns the new state.
// @Tags        Favorites
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       id             path    int     true  "Ad ID"
//
// @Success     200  {object}  handlers.ToggleFavoriteResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ads/{id}/favorite [post]
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ad id must be a positive integer")
		return
	}
	added, err := h.favSvc.Toggle(c.Request.Context(), caller(c), uint(id))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, ToggleFavoriteResponse{IsFavorite: added})
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List favorites
// @Description Returns the caller's bookmarked ads as browsing cards, most recently favorited first.
// @Tags        Favorites
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {array}   services.AdCard
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	cards, err := h.favSvc.List(c.Request.Context(), caller(c))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, cards)
}
