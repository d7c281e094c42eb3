// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// relation (the many-to-many user↔ad bookmark table).
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// IsFavorite reports whether the (user, ad) pair exists in the relation.
// The lookup is served by the unique index on the pair.
func IsFavorite(ctx context.Context, db *gorm.DB, userID, adID uint) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND ad_id = ?", userID, adID).
		Count(&n).Error
	return n > 0, err
}

// AddFavorite inserts a (user, ad) row. A concurrent duplicate insert is
// rejected by the ux_favorites_user_ad index rather than silently doubled.
func AddFavorite(ctx context.Context, db *gorm.DB, userID, adID uint) error {
	f := domain.Favorite{UserID: userID, AdID: adID, CreatedAt: time.Now().UTC()}
	return db.WithContext(ctx).Create(&f).Error
}

// RemoveFavorite deletes the (user, ad) row if present. Removing an absent
// pair is not an error.
func RemoveFavorite(ctx context.Context, db *gorm.DB, userID, adID uint) error {
	return db.WithContext(ctx).
		Where("user_id = ? AND ad_id = ?", userID, adID).
		Delete(&domain.Favorite{}).Error
}

// ListFavoriteAds returns the ads currently favorited by the user, most
// recently favorited first.
func ListFavoriteAds(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Ad, error) {
	var out []domain.Ad
	err := db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.ad_id = ads.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc, ads.id desc").
		Find(&out).Error
	return out, err
}

// FavoriteSet returns which of the given ad ids the user has favorited.
// Anonymous callers (userID 0) get an empty set.
func FavoriteSet(ctx context.Context, db *gorm.DB, userID uint, adIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(adIDs))
	if userID == 0 || len(adIDs) == 0 {
		return set, nil
	}
	var rows []domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ? AND ad_id IN ?", userID, adIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		set[r.AdID] = true
	}
	return set, nil
}
