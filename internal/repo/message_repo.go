// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the flat
// Message log. Thread grouping happens in the service layer; the queries
// here only select and order.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// CreateMessage appends a message row.
func CreateMessage(ctx context.Context, db *gorm.DB, senderID, recipientID uint, adID *uint, body string) (*domain.Message, error) {
	m := &domain.Message{
		Body:        body,
		CreatedAt:   time.Now().UTC(),
		SenderID:    senderID,
		RecipientID: recipientID,
		AdID:        adID,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// GetMessage fetches a message by ID, or ErrNotFound if missing.
func GetMessage(ctx context.Context, db *gorm.DB, id uint) (*domain.Message, error) {
	var m domain.Message
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListUserMessages returns every message the user sent or received, newest
// first (CreatedAt DESC, ID DESC so same-timestamp inserts keep a stable
// order). The service derives chat summaries from this ordering by keeping
// the first occurrence per (ad, counterpart) key.
func ListUserMessages(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at desc, id desc").
		Find(&out).Error
	return out, err
}

// ListConversation returns all messages for the ad exchanged between
// exactly the two users, in either direction, oldest first.
func ListConversation(ctx context.Context, db *gorm.DB, adID, userA, userB uint) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}

// DeleteMessage hard-deletes a message row. Returns ErrNotFound when no row
// was removed.
func DeleteMessage(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Message{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
