// Admin HTTP handlers.
//
// This file exposes the moderation endpoints. All of them require an admin
// session; the privilege check happens in the service layer so the rule is
// enforced regardless of transport.
//   - GET    /admin/users
//   - PUT    /admin/users/{id}/promote
//   - DELETE /admin/users/{id}
//   - GET    /admin/ads
//   - DELETE /admin/ads/{id}
//   - GET    /admin/reviews
//   - DELETE /admin/reviews/{id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/utils"
)

// AdminListUsers godoc
// @ID          adminListUsers
// @Summary     List all users
// @Description Returns every account with its ad count, oldest first.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
//
// @Success     200  {array}   services.AdminUser
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/users [get]
func (h *Handlers) AdminListUsers(c *gin.Context) {
	users, err := h.adminSvc.ListUsers(c.Request.Context(), caller(c))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, users)
}

// AdminPromoteUser godoc
// @ID          adminPromoteUser
// @Summary     Promote a user to admin
// @Description Grants the administrator flag. The promoted user's live tokens keep their old claim until the next login.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    int     true  "User ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/users/{id}/promote [put]
func (h *Handlers) AdminPromoteUser(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a positive integer")
		return
	}
	if err := h.adminSvc.PromoteUser(c.Request.Context(), caller(c), uint(id)); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}

// AdminDeleteUser godoc
// @ID          adminDeleteUser
// @Summary     Delete a user
// @Description Removes an account with everything hanging off it: ads, photos, favorites, messages, and reviews, in one transaction.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    int     true  "User ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/users/{id} [delete]
func (h *Handlers) AdminDeleteUser(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id must be a positive integer")
		return
	}
	if err := h.adminSvc.DeleteUser(c.Request.Context(), caller(c), uint(id)); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}

// AdminListAds godoc
// @ID          adminListAds
// @Summary     List all ads
// @Description Returns every listing regardless of status, newest first, with owner emails.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
//
// @Success     200  {array}   services.AdminAd
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/ads [get]
func (h *Handlers) AdminListAds(c *gin.Context) {
	ads, err := h.adminSvc.ListAds(c.Request.Context(), caller(c))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, ads)
}

// AdminDeleteAd godoc
// @ID          adminDeleteAd
// @Summary     Delete any ad
// @Description Removes any listing with the full cascade, ownership notwithstanding.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    int     true  "Ad ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/ads/{id} [delete]
func (h *Handlers) AdminDeleteAd(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ad id must be a positive integer")
		return
	}
	if err := h.adminSvc.DeleteAd(c.Request.Context(), caller(c), uint(id)); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}

// AdminListReviews godoc
// @ID          adminListReviews
// @Summary     List all reviews
// @Description Returns every review, newest first.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
//
// @Success     200  {array}   services.AdminReview
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/reviews [get]
func (h *Handlers) AdminListReviews(c *gin.Context) {
	reviews, err := h.adminSvc.ListReviews(c.Request.Context(), caller(c))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, reviews)
}

// AdminDeleteReview godoc
// @ID          adminDeleteReview
// @Summary     Delete any review
// @Description Removes any review. The target's aggregate rating reflects the removal on the next read.
// @Tags        Admin
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token (admin)"
// @Param       id             path    int     true  "Review ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin rights required"
// @Failure     404  {object}  handlers.ErrorResponse  "Review not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/reviews/{id} [delete]
func (h *Handlers) AdminDeleteReview(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "review id must be a positive integer")
		return
	}
	if err := h.adminSvc.DeleteReview(c.Request.Context(), caller(c), uint(id)); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}
