// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the session token revocation blocklist:
// a durable set of jtis that must be rejected even before natural expiry.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// RevokeToken records a token identifier in the blocklist. Revoking the
// same jti twice just adds another row; lookups only care about presence.
func RevokeToken(ctx context.Context, db *gorm.DB, jti string) error {
	row := domain.RevokedToken{JTI: jti, CreatedAt: time.Now().UTC()}
	return db.WithContext(ctx).Create(&row).Error
}

// IsTokenRevoked reports whether the jti appears in the blocklist.
// Consulted on every identity resolution and refresh.
func IsTokenRevoked(ctx context.Context, db *gorm.DB, jti string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&n).Error
	return n > 0, err
}
