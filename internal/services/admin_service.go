// Package services – AdminService
//
// This file implements the moderation surface. Every operation is gated by
// CanModerate, which reads the admin claim from the caller's token; a
// promoted user therefore gains these powers only after logging in again.
// Moderation deletes skip ownership checks but reuse the same ordered
// cascades as the user-facing paths, blob cleanup included.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

// AdminUser is one account row in the moderation user list.
type AdminUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_date"`
	AdsCount  int64  `json:"ads_count"`
}

// AdminAd is one listing row in the moderation ad list, regardless of
// status, with the owner's contact attached.
type AdminAd struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_date"`
	UserID      uint     `json:"user_id"`
	AuthorEmail string   `json:"author_email,omitempty"`
}

// AdminReview is one review row in the moderation review list.
type AdminReview struct {
	ID           uint   `json:"id"`
	Rating       int    `json:"rating"`
	Text         string `json:"text,omitempty"`
	CreatedAt    string `json:"created_date"`
	AuthorID     uint   `json:"author_id"`
	TargetUserID uint   `json:"target_user_id"`
	AdID         *uint  `json:"ad_id,omitempty"`
}

// AdminService exposes the privileged moderation operations.
type AdminService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Blobs cleans up photo files after moderation deletes. May be nil in
	// tests; cleanup is skipped then.
	Blobs BlobDeleter
}

// ListUsers returns every account with its ad count, oldest first.
func (s *AdminService) ListUsers(ctx context.Context, caller domain.Caller) ([]AdminUser, error) {
	if !CanModerate(caller) {
		return nil, ErrForbidden
	}
	users, err := repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]AdminUser, 0, len(users))
	for _, u := range users {
		n, err := repo.CountAdsByUser(ctx, s.DB, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			LastName:  u.LastName,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
			AdsCount:  n,
		})
	}
	return out, nil
}

// PromoteUser grants the administrator flag to an account. The promoted
// user's live tokens keep their old claim; the new one is read at their
// next login. ErrUserNotFound when the account does not exist.
func (s *AdminService) PromoteUser(ctx context.Context, caller domain.Caller, userID uint) error {
	if !CanModerate(caller) {
		return ErrForbidden
	}
	if err := repo.SetAdmin(ctx, s.DB, userID, true); err != nil {
		if err == repo.ErrNotFound {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ListAds returns every listing regardless of status, newest first, with
// the owner's email resolved when the account still exists.
func (s *AdminService) ListAds(ctx context.Context, caller domain.Caller) ([]AdminAd, error) {
	if !CanModerate(caller) {
		return nil, ErrForbidden
	}
	ads, err := repo.ListAllAds(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]AdminAd, 0, len(ads))
	for _, ad := range ads {
		row := AdminAd{
			ID:        ad.ID,
			Title:     ad.Title,
			Price:     ad.Price,
			Status:    ad.Status,
			CreatedAt: ad.CreatedAt.Format(time.RFC3339),
			UserID:    ad.UserID,
		}
		if owner, err := repo.GetUser(ctx, s.DB, ad.UserID); err == nil {
			row.AuthorEmail = owner.Email
		}
		out = append(out, row)
	}
	return out, nil
}

// DeleteAd removes any listing with the full ordered cascade, ownership
// notwithstanding, and cleans up its photo blobs.
func (s *AdminService) DeleteAd(ctx context.Context, caller domain.Caller, adID uint) error {
	if !CanModerate(caller) {
		return ErrForbidden
	}
	files, err := repo.DeleteAdCascade(ctx, s.DB, adID)
	if err != nil {
		if err == repo.ErrNotFound {
			return ErrAdNotFound
		}
		return err
	}
	cleanupBlobs(s.Blobs, files)
	return nil
}

// ListReviews returns every review, newest first.
func (s *AdminService) ListReviews(ctx context.Context, caller domain.Caller) ([]AdminReview, error) {
	if !CanModerate(caller) {
		return nil, ErrForbidden
	}
	reviews, err := repo.ListAllReviews(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]AdminReview, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, AdminReview{
			ID:           r.ID,
			Rating:       r.Rating,
			Text:         r.Text,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
			AuthorID:     r.AuthorID,
			TargetUserID: r.TargetUserID,
			AdID:         r.AdID,
		})
	}
	return out, nil
}

// DeleteReview removes any review. The target's aggregate rating reflects
// the removal on the next read.
func (s *AdminService) DeleteReview(ctx context.Context, caller domain.Caller, reviewID uint) error {
	if !CanModerate(caller) {
		return ErrForbidden
	}
	if err := repo.DeleteReview(ctx, s.DB, reviewID); err != nil {
		if err == repo.ErrNotFound {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

// DeleteUser removes an account and everything hanging off it in one
// transaction, then cleans up the photo blobs of the deleted ads.
func (s *AdminService) DeleteUser(ctx context.Context, caller domain.Caller, userID uint) error {
	if !CanModerate(caller) {
		return ErrForbidden
	}
	files, err := repo.DeleteUserCascade(ctx, s.DB, userID)
	if err != nil {
		if err == repo.ErrNotFound {
			return ErrUserNotFound
		}
		return err
	}
	cleanupBlobs(s.Blobs, files)
	return nil
}
