// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Ad and
// AdPhoto models, including the ordered cascade used when a listing is
// removed.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// AdFilter narrows ListActiveAds. Empty (or "all") fields do not filter.
type AdFilter struct {
	AdType   string
	Category string
	District string
}

// CreateAd inserts a new ad row together with its initial photo set in one
// transaction. Photo order follows the slice order; the first entry becomes
// the main photo.
func CreateAd(ctx context.Context, db *gorm.DB, ad *domain.Ad, photos []string) (*domain.Ad, error) {
	ad.CreatedAt = time.Now().UTC()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ad).Error; err != nil {
			return err
		}
		for _, name := range photos {
			p := domain.AdPhoto{Filename: name, AdID: ad.ID}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// GetAd fetches a single ad by ID, or ErrNotFound if missing.
func GetAd(ctx context.Context, db *gorm.DB, id uint) (*domain.Ad, error) {
	var ad domain.Ad
	if err := db.WithContext(ctx).First(&ad, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// ListActiveAds returns active ads matching the filter, newest first.
func ListActiveAds(ctx context.Context, db *gorm.DB, f AdFilter) ([]domain.Ad, error) {
	q := db.WithContext(ctx).Where("status = ?", "active")
	if f.AdType != "" && f.AdType != "all" {
		q = q.Where("ad_type = ?", f.AdType)
	}
	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}
	if f.District != "" && f.District != "all" {
		q = q.Where("district = ?", f.District)
	}
	var out []domain.Ad
	err := q.Order("created_at desc, id desc").Find(&out).Error
	return out, err
}

// ListAllAds returns every ad regardless of status, newest first. Used by
// the moderation surface.
func ListAllAds(ctx context.Context, db *gorm.DB) ([]domain.Ad, error) {
	var out []domain.Ad
	err := db.WithContext(ctx).Order("created_at desc, id desc").Find(&out).Error
	return out, err
}

// IncrementViews bumps the view counter by one. The update runs in SQL so
// concurrent fetches never lose an increment.
func IncrementViews(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).
		Model(&domain.Ad{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// UpdateAdFields applies the given column map to an ad. Returns ErrNotFound
// when the ad does not exist.
func UpdateAdFields(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Ad{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPhotos returns an ad's photos in insertion order (main photo first).
func ListPhotos(ctx context.Context, db *gorm.DB, adID uint) ([]domain.AdPhoto, error) {
	var out []domain.AdPhoto
	err := db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// MainPhotos returns the first photo filename per ad for the given ids.
// Ads without photos are absent from the map.
func MainPhotos(ctx context.Context, db *gorm.DB, adIDs []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(adIDs))
	if len(adIDs) == 0 {
		return out, nil
	}
	var photos []domain.AdPhoto
	err := db.WithContext(ctx).
		Where("ad_id IN ?", adIDs).
		Order("id asc").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		if _, seen := out[p.AdID]; !seen {
			out[p.AdID] = p.Filename
		}
	}
	return out, nil
}

// ReplacePhotos reconciles an ad's stored photo set with desired inside one
// transaction: rows whose filename is no longer wanted are deleted, missing
// filenames are appended. It returns the filenames that were removed so the
// caller can clean up blobs after the commit.
func ReplacePhotos(ctx context.Context, db *gorm.DB, adID uint, desired []string) (removed []string, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []domain.AdPhoto
		if err := tx.Where("ad_id = ?", adID).Order("id asc").Find(&current).Error; err != nil {
			return err
		}

		want := make(map[string]struct{}, len(desired))
		for _, name := range desired {
			want[name] = struct{}{}
		}
		have := make(map[string]struct{}, len(current))
		for _, p := range current {
			have[p.Filename] = struct{}{}
			if _, keep := want[p.Filename]; !keep {
				if err := tx.Delete(&domain.AdPhoto{}, "id = ?", p.ID).Error; err != nil {
					return err
				}
				removed = append(removed, p.Filename)
			}
		}
		for _, name := range desired {
			if _, exists := have[name]; !exists {
				if err := tx.Create(&domain.AdPhoto{Filename: name, AdID: adID}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// DeleteAdCascade removes an ad and its dependents in one transaction, in
// FK-safe order: photos and favorite rows are deleted, message and review
// references are detached (ad_id set to NULL), then the ad row goes. It
// returns the deleted photo filenames so blobs can be cleaned up after the
// commit succeeds. Returns ErrNotFound when the ad does not exist.
func DeleteAdCascade(ctx context.Context, db *gorm.DB, id uint) (photoFiles []string, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ad domain.Ad
		if err := tx.First(&ad, "id = ?", id).Error; err != nil {
			return err
		}

		var photos []domain.AdPhoto
		if err := tx.Where("ad_id = ?", id).Find(&photos).Error; err != nil {
			return err
		}
		for _, p := range photos {
			photoFiles = append(photoFiles, p.Filename)
		}

		if err := tx.Where("ad_id = ?", id).Delete(&domain.AdPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ad_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Message{}).Where("ad_id = ?", id).Update("ad_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Review{}).Where("ad_id = ?", id).Update("ad_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Ad{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return photoFiles, nil
}
