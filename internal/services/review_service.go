// Package services – ReviewService
//
// This file implements the reputation component. A review is authored
// against an ad but permanently targets the user who owned the ad at
// creation time; later ownership or ad changes do not move it. One review
// per (author, ad), never on your own ad. The aggregate is the arithmetic
// mean of received ratings rounded to one decimal, 0 for a clean slate.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

// ReviewEntry is one review as rendered on a profile page: the stored
// rating and text plus the author's display name and the ad title resolved
// at read time. A since-deleted ad renders as "deleted".
type ReviewEntry struct {
	ID         uint   `json:"id"`
	Rating     int    `json:"rating"`
	Text       string `json:"text,omitempty"`
	CreatedAt  string `json:"created_date"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name"`
	AdID       *uint  `json:"ad_id,omitempty"`
	AdTitle    string `json:"ad_title"`
}

// ReviewPage is a user's reputation view: their reviews plus the aggregate.
type ReviewPage struct {
	TargetID      uint          `json:"user_id"`
	TargetName    string        `json:"user_name"`
	AverageRating float64       `json:"average_rating"`
	Reviews       []ReviewEntry `json:"reviews"`
}

// ReviewService owns review creation and reputation reads.
type ReviewService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Create records a review on an ad. The rating must be 1..5; the ad must
// exist; the caller must not own it (ErrSelfReview) and must not have
// reviewed it before (ErrDuplicateReview, also enforced by the storage
// unique index against races). The target is the ad's current owner and is
// frozen into the row.
func (s *ReviewService) Create(ctx context.Context, caller domain.Caller, adID uint, rating int, text string) (*domain.Review, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthorized
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	ad, err := repo.GetAd(ctx, s.DB, adID)
	if err != nil {
		return nil, ErrAdNotFound
	}
	if ad.UserID == caller.UserID {
		return nil, ErrSelfReview
	}

	dup, err := repo.HasReview(ctx, s.DB, caller.UserID, adID)
	if err != nil {
		return nil, err
	}
	if !CanReviewAd(caller, ad, dup) {
		return nil, ErrDuplicateReview
	}

	r, err := repo.CreateReview(ctx, s.DB, caller.UserID, ad.UserID, &adID, rating, strings.TrimSpace(text))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}
	return r, nil
}

// ListForUser returns the reputation page of a user: reviews targeting
// them, newest first, with author names and ad titles resolved, plus the
// rounded average. ErrUserNotFound when the target does not exist.
func (s *ReviewService) ListForUser(ctx context.Context, targetUserID uint) (*ReviewPage, error) {
	target, err := repo.GetUser(ctx, s.DB, targetUserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	reviews, err := repo.ListReviewsForUser(ctx, s.DB, targetUserID)
	if err != nil {
		return nil, err
	}
	avg, err := repo.AverageRating(ctx, s.DB, targetUserID)
	if err != nil {
		return nil, err
	}

	entries := make([]ReviewEntry, 0, len(reviews))
	for _, r := range reviews {
		entries = append(entries, s.buildEntry(ctx, r))
	}
	return &ReviewPage{
		TargetID:      target.ID,
		TargetName:    strings.TrimSpace(target.Name + " " + target.LastName),
		AverageRating: avg,
		Reviews:       entries,
	}, nil
}

// AverageRating returns the user's rounded aggregate rating.
func (s *ReviewService) AverageRating(ctx context.Context, targetUserID uint) (float64, error) {
	return repo.AverageRating(ctx, s.DB, targetUserID)
}

// buildEntry resolves the display fields of one review at read time. An
// author that no longer exists renders as an empty name, a detached or
// deleted ad as the "deleted" title.
func (s *ReviewService) buildEntry(ctx context.Context, r domain.Review) ReviewEntry {
	e := ReviewEntry{
		ID:        r.ID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		AuthorID:  r.AuthorID,
		AdID:      r.AdID,
		AdTitle:   "deleted",
	}
	if author, err := repo.GetUser(ctx, s.DB, r.AuthorID); err == nil {
		e.AuthorName = strings.TrimSpace(author.Name + " " + author.LastName)
	}
	if r.AdID != nil {
		if ad, err := repo.GetAd(ctx, s.DB, *r.AdID); err == nil {
			e.AdTitle = ad.Title
		}
	}
	return e
}
