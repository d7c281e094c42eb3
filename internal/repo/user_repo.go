// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions accept a context and a *gorm.DB handle, making them safe for
// use within transactions or connection-scoped operations. They follow the
// "thin repository" approach: no business logic, only CRUD persistence and
// query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported in this package as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. Duplicate-email inserts surface as
//     a unique-constraint violation from the ux_users_email index.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// CreateUser inserts a new user row. Email uniqueness is enforced by the
// storage-level index; a duplicate insert returns the driver's constraint
// error for the caller to translate.
func CreateUser(ctx context.Context, db *gorm.DB, name, lastName, email, hashedPassword string) (*domain.User, error) {
	u := &domain.User{
		Name:           name,
		LastName:       lastName,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser fetches a user by ID, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, id uint) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches a user by email, or ErrNotFound if missing.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailTaken reports whether a user with the given email already exists.
func EmailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&n).Error
	return n > 0, err
}

// ListUsers returns all users ordered by creation time ascending.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).Order("created_at asc, id asc").Find(&out).Error
	return out, err
}

// SetAdmin flips the administrator flag of a user. Returns ErrNotFound when
// the user does not exist. Already-issued tokens keep their old admin claim;
// the new flag is read at the next token issuance.
func SetAdmin(ctx context.Context, db *gorm.DB, id uint, admin bool) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_admin", admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUserCascade removes a user and everything hanging off them in one
// transaction, in FK-safe order: the user's favorite rows, messages they
// sent or received, reviews they authored or received, each owned ad with
// its own cascade (photos, favorite markers, detached message/review refs),
// and finally the user row. It returns the photo filenames of deleted ads
// so blobs can be cleaned up after the commit. Returns ErrNotFound when the
// user does not exist.
func DeleteUserCascade(ctx context.Context, db *gorm.DB, id uint) (photoFiles []string, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR recipient_id = ?", id, id).Delete(&domain.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ? OR target_user_id = ?", id, id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}

		var ads []domain.Ad
		if err := tx.Where("user_id = ?", id).Find(&ads).Error; err != nil {
			return err
		}
		for _, ad := range ads {
			var photos []domain.AdPhoto
			if err := tx.Where("ad_id = ?", ad.ID).Find(&photos).Error; err != nil {
				return err
			}
			for _, p := range photos {
				photoFiles = append(photoFiles, p.Filename)
			}
			if err := tx.Where("ad_id = ?", ad.ID).Delete(&domain.AdPhoto{}).Error; err != nil {
				return err
			}
			if err := tx.Where("ad_id = ?", ad.ID).Delete(&domain.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Message{}).Where("ad_id = ?", ad.ID).Update("ad_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Review{}).Where("ad_id = ?", ad.ID).Update("ad_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.Ad{}, "id = ?", ad.ID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&domain.User{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return photoFiles, nil
}

// CountAdsByUser returns how many ads the user currently owns.
func CountAdsByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Ad{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}
