package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gorodok/go-market-backend/internal/domain"
)

func TestCreateMessage_And_Get(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a, _ := CreateUser(ctx, db, "A", "", "a@example.com", "h")
	b, _ := CreateUser(ctx, db, "B", "", "b@example.com", "h")
	ad, _ := CreateAd(ctx, db, newAd(b.ID, "Bike"), nil)

	m, err := CreateMessage(ctx, db, a.ID, b.ID, &ad.ID, "hello")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	got, err := GetMessage(ctx, db, m.ID)
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if got.SenderID != a.ID || got.RecipientID != b.ID || got.Body != "hello" || got.AdID == nil || *got.AdID != ad.ID {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListUserMessages_NewestFirst_BothDirections(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a, _ := CreateUser(ctx, db, "A", "", "a@example.com", "h")
	b, _ := CreateUser(ctx, db, "B", "", "b@example.com", "h")
	c, _ := CreateUser(ctx, db, "C", "", "c@example.com", "h")
	ad, _ := CreateAd(ctx, db, newAd(b.ID, "Bike"), nil)

	m1, _ := CreateMessage(ctx, db, a.ID, b.ID, &ad.ID, "sent by a")
	db.Model(&domain.Message{}).Where("id = ?", m1.ID).
		Update("created_at", time.Now().UTC().Add(-time.Hour))
	CreateMessage(ctx, db, b.ID, a.ID, &ad.ID, "received by a")
	CreateMessage(ctx, db, b.ID, c.ID, &ad.ID, "unrelated to a")

	msgs, err := ListUserMessages(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("ListUserMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages; want 2", len(msgs))
	}
	if msgs[0].Body != "received by a" || msgs[1].Body != "sent by a" {
		t.Fatalf("order mismatch: %q then %q", msgs[0].Body, msgs[1].Body)
	}
}

func TestListConversation_BothDirectionsOldestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a, _ := CreateUser(ctx, db, "A", "", "a@example.com", "h")
	b, _ := CreateUser(ctx, db, "B", "", "b@example.com", "h")
	c, _ := CreateUser(ctx, db, "C", "", "c@example.com", "h")
	ad, _ := CreateAd(ctx, db, newAd(b.ID, "Bike"), nil)
	other, _ := CreateAd(ctx, db, newAd(b.ID, "Other"), nil)

	m1, _ := CreateMessage(ctx, db, a.ID, b.ID, &ad.ID, "q")
	db.Model(&domain.Message{}).Where("id = ?", m1.ID).
		Update("created_at", time.Now().UTC().Add(-time.Hour))
	CreateMessage(ctx, db, b.ID, a.ID, &ad.ID, "r")
	CreateMessage(ctx, db, c.ID, b.ID, &ad.ID, "third party")
	CreateMessage(ctx, db, a.ID, b.ID, &other.ID, "other ad")

	msgs, err := ListConversation(ctx, db, ad.ID, a.ID, b.ID)
	if err != nil {
		t.Fatalf("ListConversation: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Body != "q" || msgs[1].Body != "r" {
		t.Fatalf("conversation mismatch: %+v", msgs)
	}
}

func TestDeleteMessage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a, _ := CreateUser(ctx, db, "A", "", "a@example.com", "h")
	b, _ := CreateUser(ctx, db, "B", "", "b@example.com", "h")
	m, _ := CreateMessage(ctx, db, a.ID, b.ID, nil, "bye")

	if err := DeleteMessage(ctx, db, m.ID); err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	if _, err := GetMessage(ctx, db, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("message still present")
	}
	if err := DeleteMessage(ctx, db, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v; want ErrNotFound", err)
	}
}
