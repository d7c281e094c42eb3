// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Review
// model and the aggregate rating query.
package repo

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// CreateReview inserts a review row. The unique (author_id, ad_id) index
// rejects a concurrent duplicate that slipped past the service pre-check.
func CreateReview(ctx context.Context, db *gorm.DB, authorID, targetUserID uint, adID *uint, rating int, text string) (*domain.Review, error) {
	r := &domain.Review{
		Rating:       rating,
		Text:         text,
		CreatedAt:    time.Now().UTC(),
		AuthorID:     authorID,
		TargetUserID: targetUserID,
		AdID:         adID,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetReview fetches a review by ID, or ErrNotFound if missing.
func GetReview(ctx context.Context, db *gorm.DB, id uint) (*domain.Review, error) {
	var r domain.Review
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// HasReview reports whether the author already reviewed this ad.
func HasReview(ctx context.Context, db *gorm.DB, authorID, adID uint) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("author_id = ? AND ad_id = ?", authorID, adID).
		Count(&n).Error
	return n > 0, err
}

// ListReviewsForUser returns reviews targeting the user, newest first.
func ListReviewsForUser(ctx context.Context, db *gorm.DB, targetUserID uint) ([]domain.Review, error) {
	var out []domain.Review
	err := db.WithContext(ctx).
		Where("target_user_id = ?", targetUserID).
		Order("created_at desc, id desc").
		Find(&out).Error
	return out, err
}

// ListAllReviews returns every review, newest first (moderation surface).
func ListAllReviews(ctx context.Context, db *gorm.DB) ([]domain.Review, error) {
	var out []domain.Review
	err := db.WithContext(ctx).Order("created_at desc, id desc").Find(&out).Error
	return out, err
}

// AverageRating computes the arithmetic mean of ratings received by the
// user, rounded to one decimal place. A user with no reviews scores 0.
func AverageRating(ctx context.Context, db *gorm.DB, targetUserID uint) (float64, error) {
	var avg *float64
	err := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("target_user_id = ?", targetUserID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return math.Round(*avg*10) / 10, nil
}

// DeleteReview hard-deletes a review row. Returns ErrNotFound when no row
// was removed.
func DeleteReview(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
