// Review HTTP handlers.
//
// This file exposes REST endpoints for the reputation component:
//   - POST /reviews             (leave a review on an ad)
//   - GET  /users/{id}/reviews  (a user's reputation page)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/utils"
)

// CreateReviewRequest is the JSON payload for leaving a review.
type CreateReviewRequest struct {
	AdID   uint   `json:"ad_id" binding:"required" example:"17"`
	Rating int    `json:"rating" binding:"required" example:"5"`
	Text   string `json:"text" example:"Great seller, quick handover"`
}

// CreateReview godoc
// @ID          createReview
// @Summary     Leave a review
// @Description Records a review on an ad, targeting its current owner. One review per caller per ad; never on your own ad.
// @Tags        Reviews
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.CreateReviewRequest  true  "Review payload"
//
// @Success     201  {object}  domain.Review
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid rating"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Already reviewed or own ad"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reviews [post]
func (h *Handlers) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	r, err := h.reviewSvc.Create(c.Request.Context(), caller(c), req.AdID, req.Rating, req.Text)
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListUserReviews godoc
// @ID          listUserReviews
// @Summary     A user's reviews
// @Description Returns the reviews targeting a user, newest first, with the rounded average rating. Public endpoint.
// @Tags        Reviews
// @Produce     json
//
// @Param       id  path  int  true  "User ID"
//
// @Success     200  {object}  services.ReviewPage
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{id}/reviews [get]
func (h *Handlers) ListUserReviews(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a positive integer")
		return
	}
	page, err := h.reviewSvc.ListForUser(c.Request.Context(), uint(id))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, page)
}
