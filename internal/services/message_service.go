// Package services – MessageService
//
// This file implements the conversation component. Messages are stored as a
// flat append-only log; there is no conversation entity. Thread summaries
// are derived by walking the caller's messages newest-first and keeping the
// first occurrence per (ad, counterpart) key, which makes "most recent
// message wins" fall out of the iteration order. The grouping key treats
// (ad, A→B) and (ad, B→A) as the same thread.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the caller and thread identifiers.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

// ChatSummary is one derived thread: the latest message exchanged with a
// counterpart about an ad, plus enough context to render a chat list row.
type ChatSummary struct {
	AdID            uint   `json:"ad_id"`
	AdTitle         string `json:"ad_title"`
	AdPhoto         string `json:"ad_photo,omitempty"`
	PartnerID       uint   `json:"partner_id"`
	PartnerName     string `json:"partner_name"`
	LastMessage     string `json:"last_message"`
	LastMessageDate string `json:"last_message_date"`
	IsMyAd          bool   `json:"is_my_ad"`
}

// ConversationMessage is one message within a thread, flagged relative to
// the requesting user.
type ConversationMessage struct {
	ID          uint   `json:"id"`
	Body        string `json:"body"`
	SenderID    uint   `json:"sender_id"`
	RecipientID uint   `json:"recipient_id"`
	CreatedAt   string `json:"created_date"`
	IsMine      bool   `json:"is_mine"`
}

// MessageService coordinates message persistence and thread derivation.
type MessageService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Send appends a message about an ad. When recipientID is zero the ad's
// owner is the implied recipient. The owner cannot rely on that default and
// must name the counterpart explicitly (ErrRecipientRequired). Naming
// yourself is ErrSelfMessage. The ad must exist; the body must be non-blank.
func (s *MessageService) Send(ctx context.Context, caller domain.Caller, adID uint, body string, recipientID uint) (*domain.Message, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Send",
		trace.WithAttributes(
			attribute.Int("ad.id", int(adID)),
			attribute.Int("user.id", int(caller.UserID)),
		),
	)
	defer span.End()

	if !caller.Authenticated() {
		return nil, ErrUnauthorized
	}
	body = strings.TrimSpace(body)
	if body == "" || adID == 0 {
		return nil, ErrEmptyMessage
	}

	ad, err := repo.GetAd(ctx, s.DB, adID)
	if err != nil {
		return nil, ErrAdNotFound
	}

	if recipientID == 0 {
		if ad.UserID == caller.UserID {
			return nil, ErrRecipientRequired
		}
		recipientID = ad.UserID
	} else if recipientID == caller.UserID {
		return nil, ErrSelfMessage
	}

	return repo.CreateMessage(ctx, s.DB, caller.UserID, recipientID, &adID, body)
}

// ListChats derives the caller's thread summaries. Messages are scanned
// newest-first and the first hit per (ad, counterpart) key wins, so each
// summary carries that thread's latest message. Threads whose ad or
// counterpart no longer resolves are skipped. Output keeps the scan order:
// most recently active thread first, one entry per key.
func (s *MessageService) ListChats(ctx context.Context, caller domain.Caller) ([]ChatSummary, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "ListChats",
		trace.WithAttributes(attribute.Int("user.id", int(caller.UserID))),
	)
	defer span.End()

	if !caller.Authenticated() {
		return nil, ErrUnauthorized
	}

	msgs, err := repo.ListUserMessages(ctx, s.DB, caller.UserID)
	if err != nil {
		return nil, err
	}

	type chatKey struct {
		adID      uint
		partnerID uint
	}
	seen := make(map[chatKey]struct{}, len(msgs))
	out := make([]ChatSummary, 0, len(msgs))

	for _, m := range msgs {
		if m.AdID == nil {
			continue
		}
		partnerID := m.SenderID
		if m.SenderID == caller.UserID {
			partnerID = m.RecipientID
		}
		key := chatKey{adID: *m.AdID, partnerID: partnerID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		partner, err := repo.GetUser(ctx, s.DB, partnerID)
		if err != nil {
			continue
		}
		ad, err := repo.GetAd(ctx, s.DB, *m.AdID)
		if err != nil {
			continue
		}
		mains, err := repo.MainPhotos(ctx, s.DB, []uint{ad.ID})
		if err != nil {
			return nil, err
		}

		out = append(out, ChatSummary{
			AdID:            ad.ID,
			AdTitle:         ad.Title,
			AdPhoto:         mains[ad.ID],
			PartnerID:       partner.ID,
			PartnerName:     strings.TrimSpace(partner.Name + " " + partner.LastName),
			LastMessage:     m.Body,
			LastMessageDate: m.CreatedAt.Format(time.RFC3339),
			IsMyAd:          ad.UserID == caller.UserID,
		})
	}
	return out, nil
}

// GetConversation returns the full thread between the caller and partner
// about one ad, oldest first, each message flagged is_mine relative to the
// caller. No messages is an empty slice, not an error.
func (s *MessageService) GetConversation(ctx context.Context, caller domain.Caller, adID, partnerID uint) ([]ConversationMessage, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "GetConversation",
		trace.WithAttributes(
			attribute.Int("ad.id", int(adID)),
			attribute.Int("partner.id", int(partnerID)),
		),
	)
	defer span.End()

	if !caller.Authenticated() {
		return nil, ErrUnauthorized
	}

	msgs, err := repo.ListConversation(ctx, s.DB, adID, caller.UserID, partnerID)
	if err != nil {
		return nil, err
	}
	out := make([]ConversationMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ConversationMessage{
			ID:          m.ID,
			Body:        m.Body,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
			IsMine:      m.SenderID == caller.UserID,
		})
	}
	return out, nil
}

// Delete hard-deletes a message the caller sent. ErrMessageNotFound when
// missing; ErrForbidden when the caller is not the sender (recipients
// cannot delete).
func (s *MessageService) Delete(ctx context.Context, caller domain.Caller, messageID uint) error {
	if !caller.Authenticated() {
		return ErrUnauthorized
	}
	m, err := repo.GetMessage(ctx, s.DB, messageID)
	if err != nil {
		return ErrMessageNotFound
	}
	if !CanDeleteMessage(caller, m) {
		return ErrForbidden
	}
	return repo.DeleteMessage(ctx, s.DB, messageID)
}
