// Package services – AuthService
//
// This file implements the credential and session component: registration,
// login, token refresh, logout (revocation), and per-request identity
// resolution. Tokens are HS256 JWTs carrying subject, unique jti, and the
// admin claim; revocation is a durable jti blocklist consulted on every
// parse. Service-level errors (ErrBadCredentials, ErrEmailTaken, ...) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/auth"
	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

// AuthService owns account creation and the session token lifecycle.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Codec signs and verifies the access/refresh token pair.
	Codec *auth.Codec
	// BcryptCost tunes credential hashing; <= 0 uses the bcrypt default.
	BcryptCost int
}

// Register creates a new account with a one-way hashed credential and
// returns it. Name, email, and password are required; last name is not.
// A duplicate email yields ErrEmailTaken whether caught by the pre-check
// or by the storage-level unique index.
func (s *AuthService) Register(ctx context.Context, name, lastName, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	taken, err := repo.EmailTaken(ctx, s.DB, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, name, lastName, email, hashed)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// The admin claim is read from the user row here, at issuance time, and
// stays fixed for the tokens' lifetime.
func (s *AuthService) Login(ctx context.Context, email, password string) (access, refresh string, user *domain.User, err error) {
	email = strings.TrimSpace(email)

	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil || !auth.VerifyPassword(u.HashedPassword, strings.TrimSpace(password)) {
		return "", "", nil, ErrBadCredentials
	}

	access, _, err = s.Codec.IssueAccess(u.ID, u.IsAdmin)
	if err != nil {
		return "", "", nil, err
	}
	refresh, _, err = s.Codec.IssueRefresh(u.ID, u.IsAdmin)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, u, nil
}

// Refresh exchanges a valid, non-revoked refresh token for a new access
// token. The new token re-mints the admin claim carried by the refresh
// token rather than re-reading the user row, so a promotion stays
// invisible until the next full login.
func (s *AuthService) Refresh(ctx context.Context, refreshRaw string) (string, error) {
	claims, err := s.Codec.ParseRefresh(refreshRaw)
	if err != nil {
		return "", ErrInvalidSession
	}
	revoked, err := repo.IsTokenRevoked(ctx, s.DB, claims.TokenID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", ErrInvalidSession
	}
	access, _, err := s.Codec.IssueAccess(claims.UserID, claims.Admin)
	return access, err
}

// Logout blocklists the access token's jti and, best-effort, the refresh
// token's. An unparsable refresh token is skipped silently (the client may
// have dropped it already); an invalid access token fails the call since
// the session it names cannot be established.
func (s *AuthService) Logout(ctx context.Context, accessRaw, refreshRaw string) error {
	claims, err := s.Codec.ParseAccess(accessRaw)
	if err != nil {
		return ErrInvalidSession
	}
	if err := repo.RevokeToken(ctx, s.DB, claims.TokenID); err != nil {
		return err
	}
	if refreshRaw != "" {
		if rc, err := s.Codec.ParseRefresh(refreshRaw); err == nil {
			if err := repo.RevokeToken(ctx, s.DB, rc.TokenID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolveIdentity derives the caller identity from a raw access token.
// It never fails: an empty, malformed, expired, or revoked token resolves
// to the anonymous caller. Endpoints that require authentication check
// Caller.Authenticated and reject with ErrUnauthorized themselves.
func (s *AuthService) ResolveIdentity(ctx context.Context, raw string) domain.Caller {
	if raw == "" {
		return domain.Anonymous
	}
	claims, err := s.Codec.ParseAccess(raw)
	if err != nil {
		return domain.Anonymous
	}
	revoked, err := repo.IsTokenRevoked(ctx, s.DB, claims.TokenID)
	if err != nil || revoked {
		return domain.Anonymous
	}
	return domain.Caller{UserID: claims.UserID, Admin: claims.Admin}
}

// CurrentUser returns the caller's profile together with their aggregate
// rating. ErrUnauthorized without a session; ErrUserNotFound if the
// account vanished while the token was still live.
func (s *AuthService) CurrentUser(ctx context.Context, caller domain.Caller) (*domain.User, float64, error) {
	if !caller.Authenticated() {
		return nil, 0, ErrUnauthorized
	}
	u, err := repo.GetUser(ctx, s.DB, caller.UserID)
	if err != nil {
		return nil, 0, ErrUserNotFound
	}
	avg, err := repo.AverageRating(ctx, s.DB, u.ID)
	if err != nil {
		return nil, 0, err
	}
	return u, avg, nil
}
