// Auth HTTP handlers.
//
// This file exposes REST endpoints for account and session resources:
//   - POST /auth/register  (create account)
//   - POST /auth/login     (issue token pair)
//   - POST /auth/refresh   (exchange refresh for access)
//   - POST /auth/logout    (revoke token pair)
//   - GET  /auth/me        (current profile)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Ivan"`
	LastName string `json:"last_name" example:"Petrov"`
	Email    string `json:"email" binding:"required" example:"ivan@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// LoginRequest is the JSON payload for obtaining a token pair.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ivan@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// RefreshRequest is the JSON payload for exchanging a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally carries the refresh token so both halves of the
// pair are revoked together.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name,omitempty"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// TokenPairResponse is returned on a successful login.
type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// AccessTokenResponse is returned on a successful refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ProfileResponse is the current user's profile with the aggregate rating.
type ProfileResponse struct {
	UserResponse
	AverageRating float64 `json:"average_rating"`
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Register a new account
// @Description Creates an account with a hashed credential and returns the public profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing fields"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	u, err := h.authSvc.Register(c.Request.Context(), req.Name, req.LastName, req.Email, req.Password)
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusCreated, UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials and issues an access/refresh token pair.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
//
// @Success     200  {object}  handlers.TokenPairResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	access, refresh, u, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: UserResponse{
			ID:       u.ID,
			Name:     u.Name,
			LastName: u.LastName,
			Email:    u.Email,
			IsAdmin:  u.IsAdmin,
		},
	})
}

// RefreshToken godoc
// @ID          refreshToken
// @Summary     Refresh the access token
// @Description Exchanges a valid, non-revoked refresh token for a new access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RefreshRequest  true  "Refresh token"
//
// @Success     200  {object}  handlers.AccessTokenResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid or revoked token"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/refresh [post]
func (h *Handlers) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "refresh_token required")
		return
	}
	access, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, AccessTokenResponse{AccessToken: access})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Revokes the presented access token and, when supplied, the refresh token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.LogoutRequest  false  "Optional refresh token"
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(raw) >= 7 && strings.EqualFold(raw[:7], "Bearer ") {
		raw = strings.TrimSpace(raw[7:])
	} else {
		raw = ""
	}
	if err := h.authSvc.Logout(c.Request.Context(), raw, req.RefreshToken); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current profile
// @Description Returns the authenticated user's profile with the aggregate rating.
// @Tags        Auth
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {object}  handlers.ProfileResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     404  {object}  handlers.ErrorResponse  "Account gone"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	u, avg, err := h.authSvc.CurrentUser(c.Request.Context(), caller(c))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, ProfileResponse{
		UserResponse: UserResponse{
			ID:       u.ID,
			Name:     u.Name,
			LastName: u.LastName,
			Email:    u.Email,
			IsAdmin:  u.IsAdmin,
		},
		AverageRating: avg,
	})
}
