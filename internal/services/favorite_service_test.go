package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gorodok/go-market-backend/internal/domain"
)

func TestFavoriteService_ToggleAlternates(t *testing.T) {
	db := newTestDB(t)
	svc := &FavoriteService{DB: db}
	ctx := context.Background()
	owner := seedUser(t, db, "o@example.com")
	buyer := seedUser(t, db, "b@example.com")
	ad := seedAd(t, db, owner.ID, "Bike")
	caller := domain.Caller{UserID: buyer.ID}

	for i, want := range []bool{true, false, true} {
		got, err := svc.Toggle(ctx, caller, ad.ID)
		if err != nil {
			t.Fatalf("Toggle #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Toggle #%d = %v; want %v", i, got, want)
		}
	}
}

func TestFavoriteService_Toggle_Errors(t *testing.T) {
	db := newTestDB(t)
	svc := &FavoriteService{DB: db}
	ctx := context.Background()
	owner := seedUser(t, db, "o@example.com")
	ad := seedAd(t, db, owner.ID, "Bike")

	if _, err := svc.Toggle(ctx, domain.Anonymous, ad.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous err = %v; want ErrUnauthorized", err)
	}
	if _, err := svc.Toggle(ctx, domain.Caller{UserID: owner.ID}, 999); !errors.Is(err, ErrAdNotFound) {
		t.Fatalf("missing ad err = %v; want ErrAdNotFound", err)
	}
}

func TestFavoriteService_IsFavorite_AnonymousFalse(t *testing.T) {
	db := newTestDB(t)
	svc := &FavoriteService{DB: db}
	ctx := context.Background()
	owner := seedUser(t, db, "o@example.com")
	ad := seedAd(t, db, owner.ID, "Bike")

	fav, err := svc.IsFavorite(ctx, domain.Anonymous, ad.ID)
	if err != nil || fav {
		t.Fatalf("IsFavorite = (%v, %v); want false", fav, err)
	}
}

func TestFavoriteService_List(t *testing.T) {
	db := newTestDB(t)
	svc := &FavoriteService{DB: db}
	ctx := context.Background()
	owner := seedUser(t, db, "o@example.com")
	buyer := seedUser(t, db, "b@example.com")
	a1 := seedAd(t, db, owner.ID, "fav one", "p1.jpg")
	seedAd(t, db, owner.ID, "not fav")
	caller := domain.Caller{UserID: buyer.ID}

	if _, err := svc.Toggle(ctx, caller, a1.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	cards, err := svc.List(ctx, caller)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cards) != 1 || cards[0].Title != "fav one" {
		t.Fatalf("cards = %+v", cards)
	}
	if !cards[0].IsFavorite || cards[0].MainPhoto != "p1.jpg" {
		t.Fatalf("card fields = %+v", cards[0])
	}

	if _, err := svc.List(ctx, domain.Anonymous); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous err = %v; want ErrUnauthorized", err)
	}
}
